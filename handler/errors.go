package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError carries a status code and the text sent to the client.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string { return e.Message }

func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest = HTTPError{Code: http.StatusBadRequest, Message: "Bad request."}
	ErrForbidden  = HTTPError{Code: http.StatusForbidden, Message: "Forbidden."}
	ErrNotFound   = HTTPError{Code: http.StatusNotFound, Message: "Not found."}
)
