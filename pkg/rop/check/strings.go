package check

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/ib-77/ropflag/pkg/rop"
	"github.com/ib-77/ropflag/pkg/rop/solo"
)

// NotEmpty rejects blank strings.
func NotEmpty() rop.Callback[string, string] {
	return solo.Check(func(v string) bool { return strings.TrimSpace(v) != "" }, "Must not be empty")
}

func OneOf(allowed ...string) rop.Callback[string, string] {
	return func(_ *rop.Invocation, v string) (string, error) {
		if slices.Contains(allowed, v) {
			return v, nil
		}
		return "", rop.BadParameterf("Must be one of: %s", strings.Join(allowed, ", "))
	}
}

// UUID parses a non-nil UUID.
func UUID() rop.Callback[string, uuid.UUID] {
	return func(_ *rop.Invocation, v string) (uuid.UUID, error) {
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return uuid.Nil, rop.BadParameterf("%q is not a valid UUID", v)
		}
		if id == uuid.Nil {
			return uuid.Nil, rop.BadParameter("Must not be the nil UUID")
		}
		return id, nil
	}
}

func TrimSpace() rop.Callback[string, string] {
	return solo.Map(func(_ *rop.Invocation, v string) string { return strings.TrimSpace(v) })
}

func Lower() rop.Callback[string, string] {
	return solo.Map(func(_ *rop.Invocation, v string) string { return strings.ToLower(v) })
}

func Suffix(suffix string) rop.Callback[string, string] {
	return solo.Map(func(_ *rop.Invocation, v string) string { return v + suffix })
}
