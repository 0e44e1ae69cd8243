package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "invalid status value",
	StatusCode: http.StatusBadRequest,
}
