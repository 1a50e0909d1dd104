package errors

import "net/http"

var ErrNoPendingProof = &Exception{
	Message:    "no pending proof to approve",
	StatusCode: http.StatusConflict,
}
