package chain

import (
	"github.com/ib-77/ropflag/pkg/rop"
)

// Pipeline is an immutable list of same-typed stages. Every method returns a
// new Pipeline, so a base pipeline can be shared and extended.
type Pipeline[T any] struct {
	stages []rop.Callback[T, T]
}

func Start[T any](callbacks ...rop.Callback[T, T]) Pipeline[T] {
	return Pipeline[T]{}.extend(callbacks...)
}

func (p Pipeline[T]) Then(onSuccess rop.Callback[T, T]) Pipeline[T] {
	return p.extend(onSuccess)
}

// Ensure adds a side effect that sees the value reached so far.
func (p Pipeline[T]) Ensure(onSuccess func(inv *rop.Invocation, value T)) Pipeline[T] {
	return p.extend(func(inv *rop.Invocation, value T) (T, error) {
		onSuccess(inv, value)
		return value, nil
	})
}

func (p Pipeline[T]) Len() int {
	return len(p.stages)
}

func (p Pipeline[T]) Callback() rop.Callback[T, T] {
	return All(p.stages...)
}

func (p Pipeline[T]) extend(callbacks ...rop.Callback[T, T]) Pipeline[T] {
	stages := make([]rop.Callback[T, T], 0, len(p.stages)+len(callbacks))
	stages = append(stages, p.stages...)
	for _, cb := range callbacks {
		if cb != nil {
			stages = append(stages, cb)
		}
	}
	return Pipeline[T]{stages: stages}
}
