package apiclient

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrInvalidScheme is returned by New when Config.Scheme is neither
	// "http" nor "https".
	ErrInvalidScheme = errors.New("apiclient: scheme must be http or https")

	// ErrNoHost is returned by New when Config.Host is empty.
	ErrNoHost = errors.New("apiclient: host must not be empty")
)

// Sentinel error codes distinguishing client-synthesized failures from
// platform-reported API errors, which use non-negative codes.
const (
	// CodeTransportFailure marks errors where the request never
	// completed: connection refused, DNS failure, timeout.
	CodeTransportFailure = -1000

	// CodeUnexpectedReply marks replies whose body could not be parsed
	// as JSON where JSON was expected.
	CodeUnexpectedReply = -1001
)

// Error is the error side of an API call outcome: either a
// platform-reported error passed through unmodified, or a synthesized
// failure carrying one of the sentinel codes.
type Error struct {
	// Code is the platform error code, or a sentinel code for
	// synthesized failures.
	Code int `json:"code"`

	// Message is the short error description.
	Message string `json:"message"`

	// Description carries additional diagnostics: the platform's long
	// description, or the raw unparseable body for CodeUnexpectedReply.
	Description string `json:"description,omitempty"`

	// Status is the HTTP status code of the reply, when one was
	// received.
	Status int `json:"-"`

	cause error
}

func (e *Error) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("apiclient: %s (code %d): %s", e.Message, e.Code, e.Description)
	}

	return fmt.Sprintf("apiclient: %s (code %d)", e.Message, e.Code)
}

// Unwrap returns the underlying transport error for
// CodeTransportFailure errors, nil otherwise.
func (e *Error) Unwrap() error {
	return e.cause
}

func transportError(err error) *Error {
	return &Error{
		Code:    CodeTransportFailure,
		Message: "transport failure",
		cause:   err,
	}
}

func unexpectedReplyError(status int, body []byte) *Error {
	return &Error{
		Code:        CodeUnexpectedReply,
		Message:     "unexpected reply",
		Description: string(body),
		Status:      status,
	}
}
