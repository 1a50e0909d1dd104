package errors

import "net/http"

var ErrLikeNotFound = &Exception{
	Message:    "like not found",
	StatusCode: http.StatusNotFound,
}
