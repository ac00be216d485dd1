package errors

import (
	"errors"
)

type ExitCodeError struct {
	code ExitCode
	error
}

// NewError attaches an exit code to err. A nil err stays nil.
func NewError(err error, exitCode ExitCode) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *ExitCodeError) Unwrap() error {
	return e.error
}

// Cause lets github.com/pkg/errors.Cause see through the exit code.
func (e *ExitCodeError) Cause() error {
	return e.error
}

// GetExitCode returns the code carried by the first ExitCodeError in err's chain.
// A nil err is a success, any other error a generic failure.
func GetExitCode(err error) ExitCode {
	if err == nil {
		return SuccessExitCode
	}
	var ece *ExitCodeError
	if errors.As(err, &ece) {
		return ece.GetExitCode()
	}
	return GenericFailureExitCode
}
