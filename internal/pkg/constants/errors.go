package constants

import "net/http"

// CodedError is an error carrying the HTTP status the API should answer with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound   = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized = NewCodedError(http.StatusUnauthorized, "unauthorized")

	// ErrInvalidInput aborts the whole yearly computation: non-positive price, malformed date,
	// out of range occupancy.
	ErrInvalidInput = NewCodedError(http.StatusBadRequest, "invalid input")
	// ErrConfiguration aborts the whole yearly computation, e.g. a zero room count.
	ErrConfiguration = NewCodedError(http.StatusInternalServerError, "invalid configuration")
	// ErrInsufficientData aborts only the affected month.
	ErrInsufficientData = NewCodedError(http.StatusUnprocessableEntity, "insufficient data")

	ErrPublisherDisabled = NewCodedError(http.StatusServiceUnavailable, "publisher is not configured")
)
