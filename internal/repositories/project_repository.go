package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "project-manager.com/project-manager/internal/errors"
	model "project-manager.com/project-manager/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// orderFields is the allow-list of sortable columns for List.
var orderFields = map[string]string{
	"id":           "id",
	"name":         "name",
	"created_date": "created_date",
}

func (r *ProjectRepository) List(ctx context.Context, offset, limit int, orderBy string) ([]model.Project, error) {
	column, ok := orderFields[orderBy]
	if !ok {
		return nil, apperrors.ErrInvalidOrderField
	}

	var projects []model.Project
	err := r.db.WithContext(ctx).
		Order(column).
		Offset(offset).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDFull loads a project together with its tasks and each task's
// collaborators.
func (r *ProjectRepository) FindByIDFull(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Tasks.Collaborators").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	now := time.Now().UTC()
	project.CreatedDate = now
	project.UpdatedDate = now
	return r.db.WithContext(ctx).Create(project).Error
}

// Update applies the given column values and refreshes updated_date.
func (r *ProjectRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	updates["updated_date"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}

func (r *ProjectRepository) CountTasks(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("project_id = ?", id).
		Count(&count).Error
	return count, err
}

// SearchByName matches the term as a case-insensitive substring.
func (r *ProjectRepository) SearchByName(ctx context.Context, term string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("lower(name) LIKE lower(?)", "%"+term+"%").
		Find(&projects).Error
	return projects, err
}
