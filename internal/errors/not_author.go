package errors

import "net/http"

var ErrNotAuthor = &Exception{
	Message:    "only the author can approve this",
	StatusCode: http.StatusForbidden,
}
