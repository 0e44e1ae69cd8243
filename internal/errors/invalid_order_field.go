package errors

import "net/http"

var ErrInvalidOrderField = &Exception{
	Message:    "invalid order field, valid options are: id, name, created_date",
	StatusCode: http.StatusBadRequest,
}
