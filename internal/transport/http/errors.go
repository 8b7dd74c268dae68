package http

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is matched by every DecodeError
	ErrDecode = errors.New("malformed product response")

	// ErrUnexpectedStatus is matched by every StatusError
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// DecodeError is returned when a response body can't be read as a product
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// StatusError is returned when the catalog answers with a status the
// caller has no specific handling for
type StatusError struct {
	Result Result
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnexpectedStatus, e.Result)
}

func (e *StatusError) Is(target error) bool { return target == ErrUnexpectedStatus }
