package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-manager.com/project-manager/internal/data_models"
)

func ValidateCreateCollaboratorRequest(r *dto.CreateCollaboratorRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	return nil
}
