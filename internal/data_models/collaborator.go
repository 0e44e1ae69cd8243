package dto

type CreateCollaboratorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateCollaboratorRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
