package errors

import "net/http"

var ErrOwnTask = &Exception{
	Message:    "you cannot claim your own task",
	StatusCode: http.StatusForbidden,
}
