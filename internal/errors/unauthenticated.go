package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Message:    "could not validate credentials",
	StatusCode: http.StatusUnauthorized,
}
