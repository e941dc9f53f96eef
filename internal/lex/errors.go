package lex

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable marks a character source that could not be opened
	// or read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrTokenTooLong marks an identifier or literal run longer than the
	// scanner accepts.
	ErrTokenTooLong = errors.New("token too long")
)

type LexError struct {
	kind    error
	message string
}

func NewSourceError(cause error) *LexError {
	return &LexError{
		kind:    ErrSourceUnavailable,
		message: cause.Error(),
	}
}

func NewTokenTooLongError(length int) *LexError {
	return &LexError{
		kind:    ErrTokenTooLong,
		message: fmt.Sprintf("run of %d characters exceeds the limit of %d", length, maxTokenLen),
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.message)
}

func (e *LexError) Unwrap() error {
	return e.kind
}
