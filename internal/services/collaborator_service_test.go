package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "project-manager.com/project-manager/internal/data_models"
	apperrors "project-manager.com/project-manager/internal/errors"
	model "project-manager.com/project-manager/internal/models"
)

func TestCollaboratorCRUD(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	collaborator := createCollaborator(t, s.collaborators, "alice")

	fetched, err := s.collaborators.Get(ctx, collaborator.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.Name)

	email := "alice@corp.example.com"
	updated, err := s.collaborators.Update(ctx, collaborator.ID, &dto.UpdateCollaboratorRequest{
		Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, email, updated.Email)

	require.NoError(t, s.collaborators.Delete(ctx, collaborator.ID))

	_, err = s.collaborators.Get(ctx, collaborator.ID)
	assert.ErrorIs(t, err, apperrors.ErrCollaboratorNotFound)
}

func TestCollaboratorDelete_RemovesAssignments(t *testing.T) {
	s := newTestServices(t)
	project := createProject(t, s.projects, "Apollo")
	alice := createCollaborator(t, s.collaborators, "alice")

	task, err := s.tasks.Create(context.Background(), &dto.CreateTaskRequest{
		ProjectID:     project.ID,
		Name:          "design",
		Collaborators: []uint{alice.ID},
	})
	require.NoError(t, err)

	require.NoError(t, s.collaborators.Delete(context.Background(), alice.ID))

	var count int64
	require.NoError(t, s.db.Model(&model.Assignment{}).
		Where("collaborator_id = ?", alice.ID).
		Count(&count).Error)
	assert.Zero(t, count)

	remaining, err := s.tasks.Collaborators(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCollaboratorTasks(t *testing.T) {
	s := newTestServices(t)
	project := createProject(t, s.projects, "Apollo")
	alice := createCollaborator(t, s.collaborators, "alice")

	for _, name := range []string{"design", "review"} {
		_, err := s.tasks.Create(context.Background(), &dto.CreateTaskRequest{
			ProjectID:     project.ID,
			Name:          name,
			Collaborators: []uint{alice.ID},
		})
		require.NoError(t, err)
	}

	tasks, err := s.collaborators.Tasks(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	_, err = s.collaborators.Tasks(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrCollaboratorNotFound)
}

func TestCollaboratorTasksOn_BoundariesInclusive(t *testing.T) {
	s := newTestServices(t)
	project := createProject(t, s.projects, "Apollo")
	alice := createCollaborator(t, s.collaborators, "alice")

	start := model.NewDate(2026, time.January, 1)
	end := model.NewDate(2026, time.January, 10)

	task, err := s.tasks.Create(context.Background(), &dto.CreateTaskRequest{
		ProjectID:     project.ID,
		Name:          "design",
		StartDate:     &start,
		EndDate:       &end,
		Collaborators: []uint{alice.ID},
	})
	require.NoError(t, err)

	for _, day := range []model.Date{
		model.NewDate(2026, time.January, 1),
		model.NewDate(2026, time.January, 5),
		model.NewDate(2026, time.January, 10),
	} {
		tasks, err := s.collaborators.TasksOn(context.Background(), alice.ID, day)
		require.NoError(t, err)
		require.Len(t, tasks, 1, "expected task on %s", day)
		assert.Equal(t, task.ID, tasks[0].ID)
	}

	for _, day := range []model.Date{
		model.NewDate(2025, time.December, 31),
		model.NewDate(2026, time.January, 11),
	} {
		tasks, err := s.collaborators.TasksOn(context.Background(), alice.ID, day)
		require.NoError(t, err)
		assert.Empty(t, tasks, "expected no task on %s", day)
	}
}

func TestCollaboratorTasksOn_OnlyOwnTasks(t *testing.T) {
	s := newTestServices(t)
	project := createProject(t, s.projects, "Apollo")
	alice := createCollaborator(t, s.collaborators, "alice")
	bob := createCollaborator(t, s.collaborators, "bob")

	start := model.NewDate(2026, time.March, 1)
	end := model.NewDate(2026, time.March, 31)

	_, err := s.tasks.Create(context.Background(), &dto.CreateTaskRequest{
		ProjectID:     project.ID,
		Name:          "bob only",
		StartDate:     &start,
		EndDate:       &end,
		Collaborators: []uint{bob.ID},
	})
	require.NoError(t, err)

	tasks, err := s.collaborators.TasksOn(context.Background(), alice.ID, model.NewDate(2026, time.March, 15))
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
