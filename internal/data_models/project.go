package dto

import (
	model "project-manager.com/project-manager/internal/models"
)

type CreateProjectRequest struct {
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	StartDate          *model.Date `json:"start_date"`
	EndDate            *model.Date `json:"end_date"`
	ForecastCompletion *model.Date `json:"forecast_completion"`
	Status             string      `json:"status"`
}

// UpdateProjectRequest distinguishes absent fields from zero values:
// nil means "leave the stored value alone".
type UpdateProjectRequest struct {
	Name               *string     `json:"name"`
	Description        *string     `json:"description"`
	StartDate          *model.Date `json:"start_date"`
	EndDate            *model.Date `json:"end_date"`
	ForecastCompletion *model.Date `json:"forecast_completion"`
	Status             *string     `json:"status"`
}
