package dto

import (
	model "project-manager.com/project-manager/internal/models"
)

type CreateTaskRequest struct {
	ProjectID        uint        `json:"project_id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	DeliveryForecast *model.Date `json:"delivery_forecast"`
	StartDate        *model.Date `json:"start_date"`
	EndDate          *model.Date `json:"end_date"`
	Status           string      `json:"status"`
	Collaborators    []uint      `json:"collaborators"`
}

// UpdateTaskRequest follows the same absent-vs-zero convention as
// UpdateProjectRequest. Collaborators is a pointer to a slice so an
// explicit empty list (clear all assignments) is distinguishable from
// the field being omitted.
type UpdateTaskRequest struct {
	Name             *string     `json:"name"`
	Description      *string     `json:"description"`
	DeliveryForecast *model.Date `json:"delivery_forecast"`
	StartDate        *model.Date `json:"start_date"`
	EndDate          *model.Date `json:"end_date"`
	Status           *string     `json:"status"`
	Collaborators    *[]uint     `json:"collaborators"`
}
