package model

import (
	"project-manager.com/project-manager/internal/constants"
)

type Task struct {
	ID               uint                 `gorm:"primaryKey" json:"id"`
	ProjectID        uint                 `gorm:"not null;index" json:"project_id"`
	Name             string               `gorm:"not null" json:"name"`
	Description      string               `json:"description"`
	DeliveryForecast *Date                `json:"delivery_forecast"`
	StartDate        *Date                `json:"start_date"`
	EndDate          *Date                `json:"end_date"`
	Status           constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`

	Collaborators []Collaborator `gorm:"many2many:assignments" json:"collaborators"`
}
