package tokentest

import "fmt"

// Error is the single failure value shared by the encode verifier and the
// decode driver. It carries only a message so tests can compare it against
// literal strings; every failure here is either "script says X, production
// said Y" or "script exhausted", and structured codes would add nothing.
type Error struct {
	msg string
}

// NewError wraps a plain message. Value implementations use it to surface
// their own failures through the encode/decode call chain.
func NewError(msg string) *Error { return &Error{msg: msg} }

// Errorf formats a message the way fmt.Errorf does.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.msg }
