// Package apperr defines the error taxonomy shared by handlers and services.
// Every error carries the HTTP status it should surface as, so the server's
// error handler stays a single translation point.
package apperr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation is a client-correctable input error; the message is echoed to the caller.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Gateway wraps an upstream payment or mail provider failure.
func Gateway(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// SignatureInvalid marks a webhook whose signature did not verify.
// Never retried by this system; the caller answers with a client error.
func SignatureInvalid(err error) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "webhook signature verification failed", Err: err}
}

// MailDelivery marks a rejected send. Fatal for the contact flow,
// logged and swallowed in the webhook flow.
func MailDelivery(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "failed to send email", Err: err}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}
