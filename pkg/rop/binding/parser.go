package binding

import (
	"strconv"
	"strings"
)

// Parser converts the raw text of one flag occurrence.
type Parser[T any] func(raw string) (T, error)

func String(raw string) (string, error) {
	return raw, nil
}

func Int(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func Float(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func Bool(raw string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(raw))
}
