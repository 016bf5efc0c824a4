package services

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "VALIDATION"
	ErrorCodeConflict     ErrorCode = "CONFLICT"
	ErrorCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrorCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrorCodeInternal     ErrorCode = "INTERNAL"
)

// Error is the service-level error carried across the handler boundary,
// where the code is mapped to an HTTP status.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// CodeOf extracts the service error code, or INTERNAL for anything else.
func CodeOf(err error) ErrorCode {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Code
	}
	return ErrorCodeInternal
}
