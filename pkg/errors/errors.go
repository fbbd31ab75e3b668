package errors

import "errors"

// Code classifies a domain error so the transport layer can translate it to an
// HTTP status without inspecting message text.
type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeNotFound    Code = "not_found"
	CodeConflict    Code = "conflict"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal"
)

// FieldError is a single structural validation failure. The shape mirrors the
// wire contract consumed by the admin UI: a JSON-pointer-ish data path, the
// violated keyword, a human message and the schema location that produced it.
type FieldError struct {
	DataPath   string         `json:"dataPath"`
	Keyword    string         `json:"keyword"`
	Message    string         `json:"message"`
	Params     map[string]any `json:"params,omitempty"`
	SchemaPath string         `json:"schemaPath,omitempty"`
}

// Error is the domain error carried from services up to the transport layer.
// Fields holds business-rule violations keyed by field name; Errors holds
// ordered structural validation failures.
type Error struct {
	Code    Code
	Message string
	Fields  map[string][]string
	Errors  []FieldError
}

func (e *Error) Error() string { return e.Message }

// New builds a plain domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithFields builds a domain error carrying per-field business-rule messages.
func WithFields(code Code, message string, fields map[string][]string) *Error {
	return &Error{Code: code, Message: message, Fields: fields}
}

// WithErrors builds a domain error carrying ordered structural field errors.
func WithErrors(code Code, message string, fieldErrors []FieldError) *Error {
	return &Error{Code: code, Message: message, Errors: fieldErrors}
}

// Is reports whether err is (or wraps) a domain error with the given code.
func Is(err error, code Code) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// From extracts the domain error from err, if any.
func From(err error) (*Error, bool) {
	var domainErr *Error
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
