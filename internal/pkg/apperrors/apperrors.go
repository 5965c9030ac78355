package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP error handler.
type Kind int

const (
	KindUnauthorized Kind = iota
	KindValidation
	KindNotFound
	KindUpstream
	KindNotConfigured
)

// AppError carries a public message and an optional internal cause.
// The cause is for logs only and must never reach a client.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func Unauthorized() *AppError {
	return &AppError{Kind: KindUnauthorized, Message: "Unauthorized"}
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// Upstream wraps a collaborator failure. message is what the client sees,
// cause is what the operator sees.
func Upstream(message string, cause error) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Cause: cause}
}

func NotConfigured(message string) *AppError {
	return &AppError{Kind: KindNotConfigured, Message: message}
}

// As unwraps err into an *AppError if possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
