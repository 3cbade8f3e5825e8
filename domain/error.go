package domain

import (
	"errors"
	"fmt"
)

// Error carries a user-facing message plus a sentinel code the caller can match with errors.Is.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code error, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

func (e *Error) Code() error {
	return e.code
}

var (
	// ErrInvalidFormat will throw if a grid locator fails length or character-class validation
	ErrInvalidFormat = errors.New("invalid grid square format")
	// ErrBadParamInput will throw if a command-line parameter or config value is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)
