package errors

import "net/http"

var ErrUsernameTaken = &Exception{
	Message:    "username already registered",
	StatusCode: http.StatusConflict,
}
