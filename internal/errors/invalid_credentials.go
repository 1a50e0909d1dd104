package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "incorrect username or password",
	StatusCode: http.StatusUnauthorized,
}
