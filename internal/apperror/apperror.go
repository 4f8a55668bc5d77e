// Package apperror defines the operational error type returned by the
// auth and product services. Every operational failure carries the HTTP
// status code it should surface with; anything that is not an *Error is
// treated as unexpected and mapped to a 500 at the boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies which failure a service returned. Handlers only look at
// the Code, but tests and callers use Kind to tell failures apart.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindDuplicateEmail     Kind = "duplicate_email"
	KindMissingField       Kind = "missing_field"
	KindNotFound           Kind = "not_found"
	KindInactiveAccount    Kind = "inactive_account"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindIncorrectPassword  Kind = "incorrect_password"
	KindHash               Kind = "hash"
	KindToken              Kind = "token"
)

// Error is an operational error with a user-facing message and an HTTP
// status code.
type Error struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the envelope status word for the error's code class:
// "fail" for 4xx, "error" for 5xx, "success" for 2xx.
func (e *Error) Status() string {
	switch {
	case e.Code >= 400 && e.Code < 500:
		return "fail"
	case e.Code >= 200 && e.Code < 300:
		return "success"
	default:
		return "error"
	}
}

// New builds an operational error with an explicit kind and code.
func New(kind Kind, code int, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, http.StatusBadRequest, message)
}

func DuplicateEmail(email string) *Error {
	return New(KindDuplicateEmail, http.StatusBadRequest, fmt.Sprintf("%s already exists", email))
}

func MissingField(message string) *Error {
	return New(KindMissingField, http.StatusBadRequest, message)
}

func NotFound(code int, message string) *Error {
	return New(KindNotFound, code, message)
}

func InactiveAccount() *Error {
	return New(KindInactiveAccount, http.StatusUnauthorized, "authentication failed, your account is inactive")
}

func InvalidCredentials() *Error {
	return New(KindInvalidCredentials, http.StatusUnauthorized, "invalid credentials")
}

func IncorrectPassword() *Error {
	return New(KindIncorrectPassword, http.StatusForbidden, "incorrect current password")
}

func Hash(err error) *Error {
	return New(KindHash, http.StatusInternalServerError, "failed to process password: "+err.Error())
}

func Token(err error) *Error {
	return New(KindToken, http.StatusInternalServerError, "failed to sign token: "+err.Error())
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
