package errors

import "net/http"

var ErrNotAnImage = &Exception{
	Message:    "file provided is not an image",
	StatusCode: http.StatusBadRequest,
}
