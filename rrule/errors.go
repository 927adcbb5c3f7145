package rrule

import (
	"errors"
	"fmt"
)

// ErrorType classifies codec failures
type ErrorType string

const (
	// ErrGrammar marks malformed key-value structure: missing '=', FREQ
	// absent or not first, duplicate or unknown keys, COUNT with UNTIL.
	ErrGrammar ErrorType = "grammar"
	// ErrValue marks a value outside its declared domain.
	ErrValue ErrorType = "value"
	// ErrUnsupported marks recognized but unimplemented input, such as
	// FREQ=SECONDLY.
	ErrUnsupported ErrorType = "unsupported"
)

// Error represents a codec error with enough context to point at the
// offending input
type Error struct {
	Type    ErrorType
	Key     string // grammar key being parsed, if any
	Input   string // offending input slice, if any
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Key != "" && e.Input != "":
		return fmt.Sprintf("rrule: %s: %s %q: %s", e.Type, e.Key, e.Input, e.Message)
	case e.Key != "":
		return fmt.Sprintf("rrule: %s: %s: %s", e.Type, e.Key, e.Message)
	case e.Input != "":
		return fmt.Sprintf("rrule: %s: %q: %s", e.Type, e.Input, e.Message)
	default:
		return fmt.Sprintf("rrule: %s: %s", e.Type, e.Message)
	}
}

func grammarErr(key, input, message string) *Error {
	return &Error{Type: ErrGrammar, Key: key, Input: input, Message: message}
}

func valueErr(key, input, message string) *Error {
	return &Error{Type: ErrValue, Key: key, Input: input, Message: message}
}

func unsupportedErr(key, input, message string) *Error {
	return &Error{Type: ErrUnsupported, Key: key, Input: input, Message: message}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsGrammar reports whether err is a grammar error.
func IsGrammar(err error) bool { return isType(err, ErrGrammar) }

// IsValue reports whether err is a value-domain error.
func IsValue(err error) bool { return isType(err, ErrValue) }

// IsUnsupported reports whether err marks recognized but unimplemented input.
func IsUnsupported(err error) bool { return isType(err, ErrUnsupported) }
