package rop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadParameter matches every *BadParameterError via errors.Is.
var ErrBadParameter = errors.New("bad parameter")

// BadParameterError is the validation failure raised by callbacks. The host
// command reports it to the user and aborts.
type BadParameterError struct {
	Message string
	// Param is the flag name without dashes. Empty until the host fills it in.
	Param string
	cause error
}

func (e *BadParameterError) Error() string {
	if e.Param == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid value for %q: %s", "--"+e.Param, e.Message)
}

func (e *BadParameterError) Is(target error) bool {
	return target == ErrBadParameter
}

func (e *BadParameterError) Unwrap() error {
	return e.cause
}

// BadParameter builds a validation failure with message used verbatim.
func BadParameter(message string) error {
	return &BadParameterError{Message: message}
}

func BadParameterf(format string, args ...any) error {
	return &BadParameterError{Message: fmt.Sprintf(format, args...)}
}

func IsBadParameter(err error) bool {
	return errors.Is(err, ErrBadParameter)
}

func AsBadParameter(err error) (*BadParameterError, bool) {
	var bp *BadParameterError
	if errors.As(err, &bp) {
		return bp, true
	}
	return nil, false
}

// ToBadParameter converts an arbitrary error into a validation failure keeping
// it as the cause. Bad-parameter errors are returned as is.
func ToBadParameter(err error) error {
	if err == nil || IsBadParameter(err) {
		return err
	}
	return &BadParameterError{Message: err.Error(), cause: err}
}

// WithParam names the flag a bad-parameter error belongs to. Errors of other
// kinds and errors that already carry a name are returned unchanged.
func WithParam(err error, param string) error {
	bp, ok := AsBadParameter(err)
	if !ok || bp.Param != "" || param == "" {
		return err
	}
	msg := bp.Message
	if _, direct := err.(*BadParameterError); !direct {
		errs := GetErrors(err)
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		msg = strings.Join(msgs, "; ")
	}
	return &BadParameterError{Message: msg, Param: param, cause: err}
}
