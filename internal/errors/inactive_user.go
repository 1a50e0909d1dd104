package errors

import "net/http"

var ErrInactiveUser = &Exception{
	Message:    "inactive user",
	StatusCode: http.StatusForbidden,
}
