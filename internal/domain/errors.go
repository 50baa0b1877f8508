package domain

import (
	"errors"
	"fmt"
)

// The engine raises exactly two error kinds: a referenced item is absent, or a
// business rule was violated. Persistence failures pass through untouched.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindInvalid
)

type Error struct {
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Reason: fmt.Sprintf(format, args...)}
}

func Invalidf(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalid, Reason: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == KindNotFound
}

func IsInvalid(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == KindInvalid
}
