// Package domainerrors provides coded domain errors shared by services and
// transport layers. Services attach a Code describing the business outcome;
// handlers translate codes to HTTP status codes without inspecting messages.
// Call sites conventionally import it as dErrors.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error for transport mapping.
type Code string

const (
	CodeValidation         Code = "validation"
	CodeBadRequest         Code = "bad_request"
	CodeConflict           Code = "conflict"
	CodeNotFound           Code = "not_found"
	CodeInvariantViolation Code = "invariant_violation"
	CodeInternal           Code = "internal"
)

// Error is a domain error with a classification code. The wrapped cause, if
// any, is preserved for errors.Is/As chains but never exposed to clients.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with a code and message while keeping it in the chain.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from the chain, defaulting to CodeInternal for
// unclassified errors so unknown faults never leak detail to clients.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a domain code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest, CodeInvariantViolation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
