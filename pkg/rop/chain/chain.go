package chain

import (
	"github.com/ib-77/ropflag/pkg/rop"
)

// All returns a callback applying callbacks in order. Nil entries are skipped
// and an empty list gives the identity callback.
func All[T any](callbacks ...rop.Callback[T, T]) rop.Callback[T, T] {
	stages := make([]rop.Callback[T, T], 0, len(callbacks))
	for _, cb := range callbacks {
		if cb != nil {
			stages = append(stages, cb)
		}
	}

	return func(inv *rop.Invocation, value T) (T, error) {
		for _, stage := range stages {
			next, err := stage(inv, value)
			if err != nil {
				var zero T
				return zero, err
			}
			value = next
		}
		return value, nil
	}
}

// Then runs first and feeds its result to second. A nil stage passes the
// value through when its input and output types match; otherwise the call
// fails with rop.ErrNilCallback.
func Then[A, B, C any](first rop.Callback[A, B], second rop.Callback[B, C]) rop.Callback[A, C] {
	return func(inv *rop.Invocation, value A) (C, error) {
		mid, err := rop.Apply(first, inv, value)
		if err != nil {
			var zero C
			return zero, err
		}
		return rop.Apply(second, inv, mid)
	}
}

func Then3[A, B, C, D any](first rop.Callback[A, B], second rop.Callback[B, C],
	third rop.Callback[C, D]) rop.Callback[A, D] {
	return Then(Then(first, second), third)
}
