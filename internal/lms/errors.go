package lms

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse is returned when a successful response lacks a field the
// caller needs.
var ErrInvalidResponse = errors.New("LMS returned an invalid response")

// RejectedError means the LMS answered with success=false.
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("lms: %s: LMS returned an error: %s", e.Op, e.Message)
}

// TransportError wraps failures to reach the LMS or to read its answer,
// including non-2xx statuses without a service error envelope.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lms: %s: network error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
