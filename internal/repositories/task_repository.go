package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	model "project-manager.com/project-manager/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, offset, limit int) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Collaborators").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Collaborators").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit("Collaborators").Create(task).Error
}

func (r *TaskRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

// AddAssignments links each collaborator to the task with a fresh
// assignment row.
func (r *TaskRepository) AddAssignments(ctx context.Context, taskID uint, collaboratorIDs []uint) error {
	if len(collaboratorIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	assignments := make([]model.Assignment, 0, len(collaboratorIDs))
	for _, collaboratorID := range collaboratorIDs {
		assignments = append(assignments, model.Assignment{
			TaskID:         taskID,
			CollaboratorID: collaboratorID,
			AssignedAt:     now,
		})
	}

	return r.db.WithContext(ctx).Create(&assignments).Error
}

// ReplaceAssignments swaps the task's collaborator set for the given ids
// in one transaction: stale edges are removed, missing ones added.
func (r *TaskRepository) ReplaceAssignments(ctx context.Context, taskID uint, collaboratorIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Where("task_id = ?", taskID)
		if len(collaboratorIDs) > 0 {
			stale = stale.Where("collaborator_id NOT IN ?", collaboratorIDs)
		}
		if err := stale.Delete(&model.Assignment{}).Error; err != nil {
			return err
		}

		if len(collaboratorIDs) == 0 {
			return nil
		}

		var existing []uint
		err := tx.Model(&model.Assignment{}).
			Where("task_id = ?", taskID).
			Pluck("collaborator_id", &existing).Error
		if err != nil {
			return err
		}

		current := make(map[uint]bool, len(existing))
		for _, id := range existing {
			current[id] = true
		}

		now := time.Now().UTC()
		var missing []model.Assignment
		for _, id := range collaboratorIDs {
			if !current[id] {
				missing = append(missing, model.Assignment{
					TaskID:         taskID,
					CollaboratorID: id,
					AssignedAt:     now,
				})
			}
		}

		if len(missing) == 0 {
			return nil
		}
		return tx.Create(&missing).Error
	})
}

func (r *TaskRepository) ListCollaborators(ctx context.Context, taskID uint) ([]model.Collaborator, error) {
	var collaborators []model.Collaborator
	err := r.db.WithContext(ctx).
		Joins("JOIN assignments ON assignments.collaborator_id = collaborators.id").
		Where("assignments.task_id = ?", taskID).
		Find(&collaborators).Error
	return collaborators, err
}

func (r *TaskRepository) ListByCollaborator(ctx context.Context, collaboratorID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Collaborators").
		Joins("JOIN assignments ON assignments.task_id = tasks.id").
		Where("assignments.collaborator_id = ?", collaboratorID).
		Find(&tasks).Error
	return tasks, err
}

// ListByCollaboratorOnDate returns the collaborator's tasks whose
// [start_date, end_date] range contains the given day, both ends inclusive.
func (r *TaskRepository) ListByCollaboratorOnDate(ctx context.Context, collaboratorID uint, date model.Date) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Collaborators").
		Joins("JOIN assignments ON assignments.task_id = tasks.id").
		Where("assignments.collaborator_id = ?", collaboratorID).
		Where("tasks.start_date <= ? AND tasks.end_date >= ?", date.Time, date.Time).
		Find(&tasks).Error
	return tasks, err
}
