package mass

import (
	"errors"
	"fmt"

	"github.com/ib-77/ropflag/pkg/rop"
)

// Each applies validator to every element in order and returns the results in
// the same order. The first failing element stops the whole call and its error
// is returned unchanged. A nil validator behaves like rop.Apply.
func Each[In, Out any](validator rop.Callback[In, Out]) rop.Callback[[]In, []Out] {
	return func(inv *rop.Invocation, values []In) ([]Out, error) {
		out := make([]Out, 0, len(values))
		for _, v := range values {
			res, err := rop.Apply(validator, inv, v)
			if err != nil {
				return nil, err
			}
			out = append(out, res)
		}
		return out, nil
	}
}

// EachAll is like Each but evaluates every element. Failures are annotated
// with the element index and joined; no results are returned when any element
// fails.
func EachAll[In, Out any](validator rop.Callback[In, Out]) rop.Callback[[]In, []Out] {
	return func(inv *rop.Invocation, values []In) ([]Out, error) {
		out := make([]Out, 0, len(values))
		var errs []error
		for i, v := range values {
			res, err := rop.Apply(validator, inv, v)
			if err != nil {
				errs = append(errs, fmt.Errorf("element %d: %w", i, err))
				continue
			}
			out = append(out, res)
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return out, nil
	}
}

// Deduplicate drops repeated values keeping the first occurrence of each. The
// result is always a new slice. It has the rop.Callback signature so it can be
// attached to a flag directly or composed with other stages.
func Deduplicate[T comparable](_ *rop.Invocation, values []T) ([]T, error) {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
