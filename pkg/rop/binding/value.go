package binding

import (
	"fmt"
	"strings"
)

// value is the pflag.Value behind every bound flag. It keeps both the raw
// occurrences and their converted form.
type value[T any] struct {
	parse    Parser[T]
	typeName string
	multiple bool
	raw      []string
	items    []T
}

func newValue[T any](parse Parser[T], multiple bool) *value[T] {
	var zero T
	typeName := fmt.Sprintf("%T", zero)
	if multiple {
		typeName += "Array"
	}
	return &value[T]{parse: parse, typeName: typeName, multiple: multiple}
}

func (v *value[T]) Set(raw string) error {
	item, err := v.parse(raw)
	if err != nil {
		return err
	}
	if !v.multiple {
		v.raw = v.raw[:0]
		v.items = v.items[:0]
	}
	v.raw = append(v.raw, raw)
	v.items = append(v.items, item)
	return nil
}

func (v *value[T]) String() string {
	if v == nil || len(v.raw) == 0 {
		return ""
	}
	if !v.multiple {
		return v.raw[0]
	}
	return "[" + strings.Join(v.raw, ",") + "]"
}

func (v *value[T]) Type() string {
	return v.typeName
}

// collected returns the converted occurrences, never nil.
func (v *value[T]) collected() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

func (v *value[T]) last() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	return v.items[len(v.items)-1], true
}
