package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "project-manager.com/project-manager/internal/configs"
	repository "project-manager.com/project-manager/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect database")

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, config.Migrate(db), "failed to migrate database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testServices struct {
	projects      *ProjectService
	tasks         *TaskService
	collaborators *CollaboratorService
	db            *gorm.DB
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)

	return &testServices{
		projects:      NewProjectService(projectRepo),
		tasks:         NewTaskService(taskRepo, projectRepo, collaboratorRepo),
		collaborators: NewCollaboratorService(collaboratorRepo, taskRepo),
		db:            db,
	}
}
