package solo

import (
	"github.com/ib-77/ropflag/pkg/rop"
)

func Validate[T any](validate func(inv *rop.Invocation, in T) (isValid bool, errMsg string)) rop.Callback[T, T] {
	return func(inv *rop.Invocation, in T) (T, error) {
		if isValid, errMsg := validate(inv, in); !isValid {
			var zero T
			return zero, rop.BadParameter(errMsg)
		}
		return in, nil
	}
}

// Check fails with message, used verbatim, when predicate rejects the value.
func Check[T any](predicate func(in T) bool, message string) rop.Callback[T, T] {
	return func(_ *rop.Invocation, in T) (T, error) {
		if predicate(in) {
			return in, nil
		}
		var zero T
		return zero, rop.BadParameter(message)
	}
}

// Checkf is Check with a format that receives the rejected value as its only
// argument.
func Checkf[T any](predicate func(in T) bool, format string) rop.Callback[T, T] {
	return func(_ *rop.Invocation, in T) (T, error) {
		if predicate(in) {
			return in, nil
		}
		var zero T
		return zero, rop.BadParameterf(format, in)
	}
}

func Map[In any, Out any](onSuccess func(inv *rop.Invocation, in In) Out) rop.Callback[In, Out] {
	return func(inv *rop.Invocation, in In) (Out, error) {
		return onSuccess(inv, in), nil
	}
}

func Try[In any, Out any](onTryExecute func(inv *rop.Invocation, in In) (Out, error)) rop.Callback[In, Out] {
	return func(inv *rop.Invocation, in In) (Out, error) {
		out, err := onTryExecute(inv, in)
		if err != nil {
			var zero Out
			return zero, rop.ToBadParameter(err)
		}
		return out, nil
	}
}

func FailOnError[T any](maybeErr func(inv *rop.Invocation, in T) error) rop.Callback[T, T] {
	return func(inv *rop.Invocation, in T) (T, error) {
		if err := maybeErr(inv, in); err != nil {
			var zero T
			return zero, rop.ToBadParameter(err)
		}
		return in, nil
	}
}

func Tee[T any](sideEffect func(inv *rop.Invocation, in T)) rop.Callback[T, T] {
	return func(inv *rop.Invocation, in T) (T, error) {
		sideEffect(inv, in)
		return in, nil
	}
}
