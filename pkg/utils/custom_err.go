package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrHistoryUnavailable = errors.New("record history is not configured")
	ErrUnknownFeature     = errors.New("unknown feature")
	ErrUnexpectedStatus   = errors.New("unexpected status code")
)

// ModelLoadError means the model artifact could not be used. Fatal at startup.
type ModelLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ModelLoadError) Error() string {
	msg := "model load failed"
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ModelLoadError) Unwrap() error { return e.Err }

// ShapeError is returned when a feature vector does not match the model input width.
type ShapeError struct {
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("feature vector has %d values, model expects %d", e.Got, e.Want)
}

type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required field(s): " + strings.Join(e.Fields, ", ")
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type OutOfRangeError struct {
	Violations []FieldViolation
}

func (e *OutOfRangeError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Message)
	}
	return "invalid field value(s): " + strings.Join(parts, "; ")
}

// NetworkError wraps a failed call to the remote prediction endpoint.
// StatusCode is zero when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode == http.StatusOK:
		return fmt.Sprintf("prediction endpoint %s returned an unreadable body: %v", e.URL, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("prediction endpoint %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("prediction endpoint %s unreachable: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RecordSinkError collects the failures of one fan-out append.
type RecordSinkError struct {
	Sinks []string
	Err   error
}

func (e *RecordSinkError) Error() string {
	return fmt.Sprintf("record sink(s) %s failed: %v", strings.Join(e.Sinks, ", "), e.Err)
}

func (e *RecordSinkError) Unwrap() error { return e.Err }
