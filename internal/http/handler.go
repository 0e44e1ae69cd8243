package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "project-manager.com/project-manager/internal/errors"
	"project-manager.com/project-manager/internal/services"
)

type Handler struct {
	projectService      *services.ProjectService
	taskService         *services.TaskService
	collaboratorService *services.CollaboratorService
}

func NewHandler(
	projectService *services.ProjectService,
	taskService *services.TaskService,
	collaboratorService *services.CollaboratorService,
) *Handler {
	return &Handler{
		projectService:      projectService,
		taskService:         taskService,
		collaboratorService: collaboratorService,
	}
}

func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// pageParams reads offset/limit query parameters, defaulting to 0 and 10.
func pageParams(c echo.Context) (offset, limit int, err error) {
	offset, limit = 0, 10

	if v := c.QueryParam("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}

	return offset, limit, nil
}
