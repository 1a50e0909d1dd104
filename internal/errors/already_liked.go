package errors

import "net/http"

var ErrAlreadyLiked = &Exception{
	Message:    "post already liked",
	StatusCode: http.StatusConflict,
}
