package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "project-manager.com/project-manager/internal/configs"
	"project-manager.com/project-manager/internal/ratelimit"
	repository "project-manager.com/project-manager/internal/repositories"
	"project-manager.com/project-manager/internal/services"
)

func setupServer(t *testing.T, rateLimit int) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)

	handler := NewHandler(
		services.NewProjectService(projectRepo),
		services.NewTaskService(taskRepo, projectRepo, collaboratorRepo),
		services.NewCollaboratorService(collaboratorRepo, taskRepo),
	)

	e := echo.New()
	Register(e, handler, ratelimit.NewMemoryLimiter(rateLimit, time.Minute))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProjectEndpoints(t *testing.T) {
	e := setupServer(t, 1000)

	rec := doJSON(e, http.MethodPost, "/projects", `{"name":"Apollo","status":"ONGOING"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Apollo"`)

	rec = doJSON(e, http.MethodPost, "/projects", `{"description":"missing name"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/projects?order_by=status", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/projects?order_by=name", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/projects/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/projects/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPut, "/projects/1", `{"description":"updated"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated"`)
	assert.Contains(t, rec.Body.String(), `"Apollo"`)

	rec = doJSON(e, http.MethodGet, "/projects/search/apo", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Apollo"`)

	rec = doJSON(e, http.MethodGet, "/projects/1/task_count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0\n", rec.Body.String())

	rec = doJSON(e, http.MethodDelete, "/projects/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/projects/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskEndpoints(t *testing.T) {
	e := setupServer(t, 1000)

	doJSON(e, http.MethodPost, "/projects", `{"name":"Apollo"}`)
	doJSON(e, http.MethodPost, "/collaborators", `{"name":"alice","email":"alice@example.com"}`)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"project_id":999,"name":"orphan"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/tasks", `{"project_id":1,"name":"design","collaborators":[1]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)

	rec = doJSON(e, http.MethodPost, "/tasks", `{"project_id":1,"name":"doomed","collaborators":[999]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/tasks/1/collaborators", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)

	rec = doJSON(e, http.MethodPut, "/tasks/1", `{"collaborators":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/tasks/1/collaborators", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"alice"`)

	rec = doJSON(e, http.MethodDelete, "/tasks/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCollaboratorEndpoints(t *testing.T) {
	e := setupServer(t, 1000)

	rec := doJSON(e, http.MethodPost, "/collaborators", `{"name":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/collaborators", `{"name":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/collaborators/1/tasks", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/collaborators/1/tasks/not-a-date", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/collaborators/1/tasks/2026-01-05", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/collaborators/999/tasks", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := setupServer(t, 2)

	for i := 0; i < 2; i++ {
		rec := doJSON(e, http.MethodGet, "/projects", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/projects", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
