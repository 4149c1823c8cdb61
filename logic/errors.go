package logic

import (
	"errors"
	"fmt"
)

var ErrContainerNotFound = errors.New("notes container not found in page")

// HttpStatusError means the notes endpoint answered with a non-2xx status.
type HttpStatusError struct {
	Status int
}

func (e *HttpStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// DecodeError means the response body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode notes: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Label for the kind of failure behind err, used in log lines.
func failureKind(err error) string {
	var statusErr *HttpStatusError
	var decodeErr *DecodeError
	switch {
	case errors.As(err, &statusErr):
		return "HTTP status error"
	case errors.As(err, &decodeErr):
		return "JSON decode error"
	}
	return "network error"
}
