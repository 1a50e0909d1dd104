package errors

import "net/http"

var ErrDeleteForbidden = &Exception{
	Message:    "only the author can delete this task",
	StatusCode: http.StatusForbidden,
}
