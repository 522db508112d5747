package check

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/ib-77/ropflag/pkg/rop"
	"github.com/ib-77/ropflag/pkg/rop/solo"
)

// Number covers the built-in integer and float kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Positive[T Number]() rop.Callback[T, T] {
	return solo.Check(func(v T) bool { return v > 0 }, "Must be positive")
}

func Min[T cmp.Ordered](minVal T) rop.Callback[T, T] {
	return func(_ *rop.Invocation, v T) (T, error) {
		if v < minVal {
			var zero T
			return zero, rop.BadParameterf("Must be >= %v", minVal)
		}
		return v, nil
	}
}

func Max[T cmp.Ordered](maxVal T) rop.Callback[T, T] {
	return func(_ *rop.Invocation, v T) (T, error) {
		if v > maxVal {
			var zero T
			return zero, rop.BadParameterf("Must be <= %v", maxVal)
		}
		return v, nil
	}
}

// Range accepts values in [minVal, maxVal].
func Range[T cmp.Ordered](minVal, maxVal T) rop.Callback[T, T] {
	return func(_ *rop.Invocation, v T) (T, error) {
		if v < minVal || v > maxVal {
			var zero T
			return zero, rop.BadParameterf("Must be between %v and %v", minVal, maxVal)
		}
		return v, nil
	}
}

// Atoi parses a base-10 integer, ignoring surrounding whitespace.
func Atoi() rop.Callback[string, int] {
	return func(_ *rop.Invocation, v string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, rop.BadParameterf("%q is not a valid integer", v)
		}
		return n, nil
	}
}
