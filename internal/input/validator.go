// Package input implements the prompt-validate-retry loop every interactive
// value goes through.
package input

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/janisto/kyc-bank-console/internal/common"
	"github.com/janisto/kyc-bank-console/internal/console"
)

// Source supplies one line of input per call. console.LineReader is the
// production implementation.
type Source interface {
	ReadLine(ctx context.Context) (string, error)
}

// Rules narrows what a prompt accepts. The zero value accepts any value of the type.
type Rules[T any] struct {
	// Allowed, when non-empty, lists the only acceptable values.
	Allowed []T
	// Check runs last; a non-nil error is shown to the user as the diagnostic.
	Check func(T) error
}

// Validator pairs an input source with the presenter used for prompts and diagnostics.
type Validator struct {
	src Source
	out console.Presenter
}

// New returns a Validator reading from src and writing through out.
func New(src Source, out console.Presenter) *Validator {
	return &Validator{src: src, out: out}
}

// Parse makes one validation attempt on raw input: trim, reject empty,
// convert, check the allowed set, then run the check.
func Parse[T any](raw string, typ Type[T], rules Rules[T]) (T, error) {
	var zero T
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zero, ErrEmptyInput
	}
	val, err := typ.Parse(raw)
	if err != nil {
		return zero, &ConversionError{Input: raw, Type: typ.Name, Err: err}
	}
	if len(rules.Allowed) > 0 && !contains(rules.Allowed, val, typ.Equal) {
		return zero, &DisallowedError{Input: raw}
	}
	if rules.Check != nil {
		if err := rules.Check(val); err != nil {
			return zero, err
		}
	}
	return val, nil
}

func contains[T any](set []T, val T, equal func(a, b T) bool) bool {
	for _, s := range set {
		if equal(s, val) {
			return true
		}
	}
	return false
}

// Ask shows prompt and reads lines until one passes Parse, printing each
// failure's diagnostic before asking again. There is no attempt limit.
// An over-long line counts as a failed attempt. The only error returned
// wraps ErrInterrupted.
func Ask[T any](ctx context.Context, v *Validator, prompt string, typ Type[T], rules Rules[T]) (T, error) {
	for attempt := 1; ; attempt++ {
		v.out.Prompt(prompt)
		raw, err := v.src.ReadLine(ctx)
		if err != nil && !errors.Is(err, console.ErrLineTooLong) {
			var zero T
			return zero, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		var val T
		if err == nil {
			val, err = Parse(raw, typ, rules)
		}
		if err != nil {
			v.out.Error(err.Error())
			common.LogDebug(ctx, "input rejected",
				zap.String("prompt", strings.TrimSpace(prompt)),
				zap.Int("attempt", attempt),
				zap.String("reason", Reason(err)),
			)
			continue
		}
		return val, nil
	}
}

// Reason classifies a Parse failure for logging without echoing the input.
func Reason(err error) string {
	var conv *ConversionError
	var dis *DisallowedError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "empty"
	case errors.Is(err, console.ErrLineTooLong):
		return "too_long"
	case errors.As(err, &conv):
		return "conversion"
	case errors.As(err, &dis):
		return "disallowed"
	default:
		return "rule"
	}
}
