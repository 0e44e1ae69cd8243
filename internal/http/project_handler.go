package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-manager.com/project-manager/internal/data_models"
	"project-manager.com/project-manager/internal/http/validators"
)

func (h *Handler) ListProjects(c echo.Context) error {
	offset, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	orderBy := c.QueryParam("order_by")
	if orderBy == "" {
		orderBy = "id"
	}

	projects, err := h.projectService.List(c.Request().Context(), offset, limit, orderBy)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projectService.Create(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	project, err := h.projectService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ProjectTaskCount(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	count, err := h.projectService.TaskCount(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, count)
}

func (h *Handler) SearchProjects(c echo.Context) error {
	projects, err := h.projectService.Search(c.Request().Context(), c.Param("term"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, projects)
}

// GetProjectFull returns the project with its tasks and each task's
// collaborators.
func (h *Handler) GetProjectFull(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.GetFull(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, project)
}
