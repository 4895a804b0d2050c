package saldo

import "errors"

// ErrInvalidInput is wrapped by every error caused by a line the user typed.
// All of them are reported with the same message, see MessageInvalidInput.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrUnknownCommand   = invalid("unknown command")
	ErrUnexpectedAmount = invalid("command takes no amount")
	ErrMissingAmount    = invalid("missing amount")
	ErrInvalidAmount    = invalid("invalid amount")
	ErrLineTooLong      = invalid("line too long")
)

type inputError struct{ msg string }

func invalid(msg string) error             { return &inputError{msg: msg} }
func (e *inputError) Error() string        { return e.msg }
func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }
