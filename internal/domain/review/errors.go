// internal/domain/review/errors.go
package review

import (
	"errors"
	"fmt"
)

// Lookup failures carried by ParseError.
var (
	ErrHomeworksMissing  = errors.New(`key "homeworks" not found in response`)
	ErrHomeworksNotList  = errors.New(`value of "homeworks" is not a list`)
	ErrHomeworksEmpty    = errors.New(`list "homeworks" is empty`)
	ErrHomeworkNotObject = errors.New("homework entry is not an object")
)

// RemoteUnavailableError means the review API could not be reached or answered with a non-200 status.
// StatusCode is zero when no HTTP response was received.
type RemoteUnavailableError struct {
	StatusCode int
	Err        error
}

func (e *RemoteUnavailableError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("review API is unavailable: %v", e.Err)
	}
	return fmt.Sprintf("review API is unavailable, response code %d", e.StatusCode)
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Err }

// DecodeError means the response body could not be decoded as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode review API response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MalformedResponseError means the top-level response value is not a JSON object.
type MalformedResponseError struct {
	Type string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("review API response is %s, not an object", e.Type)
}

// ParseError means the homework list could not be extracted from the response.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse homework list: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError means a required key is absent in a homework entry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("key %q not found in homework", e.Field)
}

// UnknownStatusError means the homework status is not in the status catalog.
type UnknownStatusError struct {
	Status any
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %v", e.Status)
}
