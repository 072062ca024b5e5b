package errors

import "net/http"

// Duplicate-field messages, keyed by the offending request field. Pre-insert
// uniqueness checks and recovered unique-index violations both surface through
// the same messages so the response shape is identical either way.
const (
	msgEmailInUse        = "Email is already in use"
	msgCompanyNameTaken  = "Company name is already taken"
	msgLicenseRegistered = "Medical license is already registered"
	msgPhoneRegistered   = "Phone number is already registered"
)

// duplicateMessages maps a field name to its user-facing message.
var duplicateMessages = map[string]string{
	"email":          msgEmailInUse,
	"companyName":    msgCompanyNameTaken,
	"medicalLicense": msgLicenseRegistered,
	"phone":          msgPhoneRegistered,
}

// DuplicateFieldError reports that a uniquely-constrained field is already
// taken. It implements AppError and additionally carries the offending field
// so the HTTP layer can render {field, errorType: "duplicate"}.
type DuplicateFieldError struct {
	field string
}

// NewDuplicateFieldError creates a duplicate error for the given request field.
func NewDuplicateFieldError(field string) *DuplicateFieldError {
	return &DuplicateFieldError{field: field}
}

// Error implements the error interface
func (e *DuplicateFieldError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *DuplicateFieldError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *DuplicateFieldError) ErrorCode() string {
	return "DUPLICATE_FIELD"
}

// Message returns the user-friendly error message
func (e *DuplicateFieldError) Message() string {
	if msg, ok := duplicateMessages[e.field]; ok {
		return msg
	}

	return "Value is already in use"
}

// Details returns detailed error information
func (e *DuplicateFieldError) Details() string {
	return ""
}

// Field returns the request field that collided.
func (e *DuplicateFieldError) Field() string {
	return e.field
}

// ErrorType returns the machine-readable error class for the response envelope.
func (e *DuplicateFieldError) ErrorType() string {
	return "duplicate"
}
