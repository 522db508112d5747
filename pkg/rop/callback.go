package rop

import (
	"errors"
	"fmt"
)

// ErrNilCallback is returned when a nil callback has to turn a value into
// another type.
var ErrNilCallback = errors.New("nil callback")

// Callback validates or transforms a single value. It may return a value of a
// different type than it receives. A failing callback returns a
// *BadParameterError (see BadParameter) so the host command can report it.
type Callback[In, Out any] func(inv *Invocation, value In) (Out, error)

// Identity returns a callback that passes the value through unchanged.
func Identity[T any]() Callback[T, T] {
	return func(_ *Invocation, value T) (T, error) {
		return value, nil
	}
}

// Apply runs cb on value. A nil callback passes the value through when it is
// already an Out and fails with ErrNilCallback otherwise.
func Apply[In, Out any](cb Callback[In, Out], inv *Invocation, value In) (Out, error) {
	if cb != nil {
		return cb(inv, value)
	}
	if out, ok := any(value).(Out); ok {
		return out, nil
	}
	var zero Out
	return zero, fmt.Errorf("%w: cannot convert %T to %T", ErrNilCallback, value, zero)
}
