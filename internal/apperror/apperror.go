// Package apperror defines the error taxonomy shared by the exam pipeline.
// Controllers map these to HTTP status codes; anything unrecognized is a 500
// with an opaque body.
package apperror

import "fmt"

// ValidationError means the input was malformed or incomplete. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError covers missing exams, missing results and sampling
// criteria that matched nothing.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// AuthError means no verified caller identity was present.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

func Authf(format string, args ...interface{}) error {
	return &AuthError{Msg: fmt.Sprintf(format, args...)}
}
