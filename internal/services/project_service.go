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

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context, offset, limit int, orderBy string) ([]model.Project, error) {
	return s.repo.List(ctx, offset, limit, orderBy)
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetFull(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.repo.FindByIDFull(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*model.Project, error) {
	status := constants.ProjectStatus(req.Status)
	if req.Status == "" {
		status = constants.ProjectPending
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	project := &model.Project{
		Name:               req.Name,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		ForecastCompletion: req.ForecastCompletion,
		Status:             status,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update overwrites only the fields present in the request and refreshes
// updated_date.
func (s *ProjectService) Update(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*model.Project, error) {
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
	if req.StartDate != nil {
		updates["start_date"] = req.StartDate.Time
	}
	if req.EndDate != nil {
		updates["end_date"] = req.EndDate.Time
	}
	if req.ForecastCompletion != nil {
		updates["forecast_completion"] = req.ForecastCompletion.Time
	}
	if req.Status != nil {
		status := constants.ProjectStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		updates["status"] = status
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) TaskCount(ctx context.Context, id uint) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}
	return s.repo.CountTasks(ctx, id)
}

func (s *ProjectService) Search(ctx context.Context, term string) ([]model.Project, error) {
	return s.repo.SearchByName(ctx, term)
}
