package repository

import (
	"context"

	"gorm.io/gorm"

	model "project-manager.com/project-manager/internal/models"
)

type CollaboratorRepository struct {
	db *gorm.DB
}

func NewCollaboratorRepository(db *gorm.DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

func (r *CollaboratorRepository) List(ctx context.Context, offset, limit int) ([]model.Collaborator, error) {
	var collaborators []model.Collaborator
	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&collaborators).Error
	return collaborators, err
}

func (r *CollaboratorRepository) FindByID(ctx context.Context, id uint) (*model.Collaborator, error) {
	var collaborator model.Collaborator
	if err := r.db.WithContext(ctx).First(&collaborator, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// CountByIDs reports how many of the given ids exist.
func (r *CollaboratorRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Collaborator{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *CollaboratorRepository) Create(ctx context.Context, collaborator *model.Collaborator) error {
	return r.db.WithContext(ctx).Create(collaborator).Error
}

func (r *CollaboratorRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Collaborator{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *CollaboratorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Collaborator{}, "id = ?", id).Error
}
