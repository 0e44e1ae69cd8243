package model

import "time"

// Assignment is one edge of the Task/Collaborator many-to-many relation.
// It is the join table behind Task.Collaborators but carries its own
// surrogate id and timestamp; repositories create and delete rows directly.
type Assignment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TaskID         uint      `gorm:"not null;index" json:"task_id"`
	CollaboratorID uint      `gorm:"not null;index" json:"collaborator_id"`
	AssignedAt     time.Time `gorm:"not null" json:"assigned_at"`

	Task         Task         `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Collaborator Collaborator `gorm:"foreignKey:CollaboratorID;constraint:OnDelete:CASCADE" json:"-"`
}
