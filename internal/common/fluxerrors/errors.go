// Package fluxerrors contains generic errors shared by the code that talks to
// the Flux scheduler and by config validation. Callers should wrap these with
// github.com/pkg/errors (e.g., errors.WithStack or errors.WithMessage) at the
// point they are created, so that log messages carry a stack trace.
//
// If multiple errors occur in some function (e.g., several invalid config
// values), that function should return an error of type multierror.Error from
// package github.com/hashicorp/go-multierror that encapsulates those
// individual errors.
package fluxerrors

import (
	"fmt"
)

// ErrNotFound is a generic error to be returned whenever some resource isn't
// known, e.g., an unknown machine name. Type and Message are optional and are
// omitted from the error message if not provided.
type ErrNotFound struct {
	Type    string // Resource type, e.g., "machine"
	Value   string // Resource name, e.g., "tuolumne"
	Message string // An optional message to include in the error message
}

func (err *ErrNotFound) Error() (s string) {
	if err.Type != "" {
		s = fmt.Sprintf("resource %q of type %q does not exist", err.Value, err.Type)
	} else {
		s = fmt.Sprintf("resource %q does not exist", err.Value)
	}
	if err.Message != "" {
		return s + fmt.Sprintf("; %s", err.Message)
	}
	return s
}

// ErrInvalidArgument is a generic error to be returned on invalid argument.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the field referred to, e.g., "checkpointInterval"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() (s string) {
	s = fmt.Sprintf("value %v of field %q is invalid", err.Value, err.Name)
	if err.Message != "" {
		return s + fmt.Sprintf("; %s", err.Message)
	}
	return s
}

// ErrSubmitFailed is returned when the flux binary exits non-zero while
// submitting a batch script.
type ErrSubmitFailed struct {
	Script  string // Path of the batch script that was being submitted
	Stderr  string // What the scheduler wrote to stderr, if anything
	Message string // An optional message to include with the error message
}

func (err *ErrSubmitFailed) Error() (s string) {
	s = fmt.Sprintf("failed to submit batch script %q", err.Script)
	if err.Message != "" {
		s = s + fmt.Sprintf("; %s", err.Message)
	}
	if err.Stderr != "" {
		s = s + fmt.Sprintf("; scheduler said: %s", err.Stderr)
	}
	return s
}
