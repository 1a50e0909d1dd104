package errors

import "net/http"

var ErrNotCommentAuthor = &Exception{
	Message:    "not enough permissions",
	StatusCode: http.StatusForbidden,
}
