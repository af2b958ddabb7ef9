package input

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is reported when nothing but whitespace was entered.
	ErrEmptyInput = errors.New("no user input detected, try again")

	// ErrInterrupted ends a prompt without a value: the context was cancelled or
	// the input source closed. It is the only error Ask returns.
	ErrInterrupted = errors.New("input interrupted")
)

// ConversionError reports input that cannot be converted to the expected type.
type ConversionError struct {
	Input string
	Type  string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid user input %q, expected %s", e.Input, e.Type)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// DisallowedError reports a converted value outside the allowed set.
type DisallowedError struct {
	Input string
}

func (e *DisallowedError) Error() string {
	return fmt.Sprintf("input %s is not a listed option", e.Input)
}
