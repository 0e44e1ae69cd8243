package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"project-manager.com/project-manager/internal/constants"
	dto "project-manager.com/project-manager/internal/data_models"
	apperrors "project-manager.com/project-manager/internal/errors"
	model "project-manager.com/project-manager/internal/models"
	repository "project-manager.com/project-manager/internal/repositories"
)

type TaskService struct {
	repo             *repository.TaskRepository
	projectRepo      *repository.ProjectRepository
	collaboratorRepo *repository.CollaboratorRepository
}

func NewTaskService(
	repo *repository.TaskRepository,
	projectRepo *repository.ProjectRepository,
	collaboratorRepo *repository.CollaboratorRepository,
) *TaskService {
	return &TaskService{
		repo:             repo,
		projectRepo:      projectRepo,
		collaboratorRepo: collaboratorRepo,
	}
}

func (s *TaskService) List(ctx context.Context, offset, limit int) ([]model.Task, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// Create stores the task and then links the requested collaborators. The
// task row is committed before the collaborator ids are checked, so a
// missing collaborator leaves the task in place with no assignments.
func (s *TaskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	status := constants.TaskStatus(req.Status)
	if req.Status == "" {
		status = constants.TaskPending
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	task := &model.Task{
		ProjectID:        req.ProjectID,
		Name:             req.Name,
		Description:      req.Description,
		DeliveryForecast: req.DeliveryForecast,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           status,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	if len(req.Collaborators) > 0 {
		ids := dedupe(req.Collaborators)
		if err := s.checkCollaboratorsExist(ctx, ids); err != nil {
			return nil, err
		}
		if err := s.repo.AddAssignments(ctx, task.ID, ids); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, task.ID)
}

// Update applies a partial update. A collaborators field, when present,
// replaces the task's whole collaborator set; an empty list clears it.
func (s *TaskService) Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*model.Task, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DeliveryForecast != nil {
		updates["delivery_forecast"] = req.DeliveryForecast.Time
	}
	if req.StartDate != nil {
		updates["start_date"] = req.StartDate.Time
	}
	if req.EndDate != nil {
		updates["end_date"] = req.EndDate.Time
	}
	if req.Status != nil {
		status := constants.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		updates["status"] = status
	}

	if req.Collaborators != nil {
		ids := dedupe(*req.Collaborators)
		if err := s.checkCollaboratorsExist(ctx, ids); err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceAssignments(ctx, id, ids); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) Collaborators(ctx context.Context, id uint) ([]model.Collaborator, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListCollaborators(ctx, id)
}

func (s *TaskService) checkCollaboratorsExist(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	count, err := s.collaboratorRepo.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apperrors.ErrCollaboratorNotFound
	}
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
