package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-manager.com/project-manager/internal/data_models"
	"project-manager.com/project-manager/internal/http/validators"
	model "project-manager.com/project-manager/internal/models"
)

func (h *Handler) ListCollaborators(c echo.Context) error {
	offset, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	collaborators, err := h.collaboratorService.List(c.Request().Context(), offset, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, collaborators)
}

func (h *Handler) GetCollaborator(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	collaborator, err := h.collaboratorService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, collaborator)
}

func (h *Handler) CreateCollaborator(c echo.Context) error {
	var req dto.CreateCollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateCollaboratorRequest(&req); err != nil {
		return err
	}

	collaborator, err := h.collaboratorService.Create(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, collaborator)
}

func (h *Handler) UpdateCollaborator(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	collaborator, err := h.collaboratorService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, collaborator)
}

func (h *Handler) DeleteCollaborator(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.collaboratorService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListCollaboratorTasks(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	tasks, err := h.collaboratorService.Tasks(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// ListCollaboratorTasksByDate filters the collaborator's tasks to those
// whose start/end range contains the path date.
func (h *Handler) ListCollaboratorTasksByDate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	date, err := model.ParseDate(c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	tasks, err := h.collaboratorService.TasksOn(c.Request().Context(), id, date)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}
