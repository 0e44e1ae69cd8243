package model

import (
	"time"

	"project-manager.com/project-manager/internal/constants"
)

type Project struct {
	ID                 uint                    `gorm:"primaryKey" json:"id"`
	Name               string                  `gorm:"not null" json:"name"`
	Description        string                  `json:"description"`
	StartDate          *Date                   `json:"start_date"`
	EndDate            *Date                   `json:"end_date"`
	ForecastCompletion *Date                   `json:"forecast_completion"`
	Status             constants.ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedDate        time.Time               `gorm:"not null" json:"created_date"`
	UpdatedDate        time.Time               `gorm:"not null" json:"updated_date"`

	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}
