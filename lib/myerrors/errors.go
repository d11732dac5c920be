package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type publicMessager interface {
	error
	GetPublicMessage() string
}

// httpError carries the http status to respond with and, optionally, the
// message that may be shown to the caller. The wrapped error is only logged.
type httpError struct {
	httpCode      int
	publicMessage string
	err           error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func (e httpError) GetPublicMessage() string {
	if e.publicMessage != "" {
		return e.publicMessage
	}
	return e.err.Error()
}

// WithPublicMessage replaces the text exposed to the caller.
func (e *httpError) WithPublicMessage(msg string) *httpError {
	e.publicMessage = msg
	return e
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}

// GetPublicMessage returns the text that is safe to return to a caller.
// Errors that were not created by this package never leak their details.
func GetPublicMessage(err error) string {
	var messager publicMessager
	if err != nil && errors.As(err, &messager) {
		return messager.GetPublicMessage()
	}
	return http.StatusText(http.StatusInternalServerError)
}
