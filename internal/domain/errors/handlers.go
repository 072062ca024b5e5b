package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified error envelope written by the HTTP error handler.
// Field and ErrorType are only present for duplicate-field errors.
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	Field     string     `json:"field,omitempty"`
	ErrorType string     `json:"errorType,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
}
