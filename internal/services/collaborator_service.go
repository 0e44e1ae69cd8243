package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "project-manager.com/project-manager/internal/data_models"
	apperrors "project-manager.com/project-manager/internal/errors"
	model "project-manager.com/project-manager/internal/models"
	repository "project-manager.com/project-manager/internal/repositories"
)

type CollaboratorService struct {
	repo     *repository.CollaboratorRepository
	taskRepo *repository.TaskRepository
}

func NewCollaboratorService(
	repo *repository.CollaboratorRepository,
	taskRepo *repository.TaskRepository,
) *CollaboratorService {
	return &CollaboratorService{
		repo:     repo,
		taskRepo: taskRepo,
	}
}

func (s *CollaboratorService) List(ctx context.Context, offset, limit int) ([]model.Collaborator, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *CollaboratorService) Get(ctx context.Context, id uint) (*model.Collaborator, error) {
	collaborator, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCollaboratorNotFound
		}
		return nil, err
	}
	return collaborator, nil
}

func (s *CollaboratorService) Create(ctx context.Context, req *dto.CreateCollaboratorRequest) (*model.Collaborator, error) {
	collaborator := &model.Collaborator{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := s.repo.Create(ctx, collaborator); err != nil {
		return nil, err
	}
	return collaborator, nil
}

func (s *CollaboratorService) Update(ctx context.Context, id uint, req *dto.UpdateCollaboratorRequest) (*model.Collaborator, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *CollaboratorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CollaboratorService) Tasks(ctx context.Context, id uint) ([]model.Task, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByCollaborator(ctx, id)
}

// TasksOn returns the collaborator's tasks whose date range contains the
// given day.
func (s *CollaboratorService) TasksOn(ctx context.Context, id uint, date model.Date) ([]model.Task, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByCollaboratorOnDate(ctx, id, date)
}
