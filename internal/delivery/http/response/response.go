package response

import (
	"net/http"

	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`                // HTTP status code
	Message   string     `json:"message"`             // User-friendly message
	Field     string     `json:"field,omitempty"`     // Offending field, duplicate errors only
	ErrorType string     `json:"errorType,omitempty"` // Machine-readable error class
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// NoChange reports an accepted request that resulted in no state change.
// It is a 200 with success=false so clients can distinguish it from a write.
func NoChange(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success: false,
		Code:    http.StatusOK,
		Message: message,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// DuplicateField renders the {field, errorType: "duplicate"} envelope shared by
// pre-insert uniqueness checks and recovered unique-index violations.
func DuplicateField(c echo.Context, dupErr *domainerrors.DuplicateFieldError) error {
	return c.JSON(dupErr.HTTPCode(), Response{
		Success:   false,
		Code:      dupErr.HTTPCode(),
		Message:   dupErr.Message(),
		Field:     dupErr.Field(),
		ErrorType: dupErr.ErrorType(),
		Error: &ErrorInfo{
			Code: dupErr.ErrorCode(),
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var dupErr *domainerrors.DuplicateFieldError
	if errors.As(err, &dupErr) {
		return DuplicateField(c, dupErr)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
