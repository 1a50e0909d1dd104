package errors

import (
	"errors"
	"net/http"
)

// Exception is a domain error with the HTTP status it maps to. Every
// precondition failure in the task lifecycle is one of these sentinels, so
// handlers never guess at status codes.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode maps an error to its HTTP status; anything unknown is a 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
