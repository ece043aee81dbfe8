package vgk

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Validation errors 📐
	ErrInvalidArgument = errors.New("❌ invalid argument")

	// Execution errors 🚀
	ErrTimeout      = errors.New("❌ tool timed out")
	ErrLaunchFailed = errors.New("❌ failed to launch tool")
)

// ArgumentError reports a parameter value that failed validation. The
// rejected field keeps whatever value it held before the attempt.
type ArgumentError struct {
	Field      string
	Value      interface{}
	Constraint string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s must be %s, but %v given", ErrInvalidArgument, e.Field, e.Constraint, e.Value)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// TimeoutError reports a tool that did not finish inside its allotted
// time. The spawned process has already been killed when this returns.
type TimeoutError struct {
	Tool    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%v: %s did not complete within %s", ErrTimeout, e.Tool, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }
