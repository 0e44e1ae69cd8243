package errors

import "net/http"

var ErrCollaboratorNotFound = &Exception{
	Message:    "one or more collaborators not found",
	StatusCode: http.StatusNotFound,
}
