// Package errs wraps cockroachdb/errors and holds the sentinels handlers map
// to HTTP statuses. Detailed errors are Mark()ed with one of them.
package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

var (
	ErrValidation = errors.New("validation error")
	ErrTooLarge   = errors.New("payload too large")
	ErrNotFound   = errors.New("not found")
	ErrSlotFull   = errors.New("time slot full")
	ErrStorage    = errors.New("storage failure")
	ErrSendFailed = errors.New("message send failed")
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err with mark; Is(err, mark) holds afterwards. A nil err yields mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Invalid wraps cause with context and marks it as a validation error.
func Invalid(cause error, format string, args ...any) error {
	return cr.Mark(cr.Wrapf(cause, format, args...), ErrValidation)
}

// Is also matches marks, which the standard library errors.Is does not see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
