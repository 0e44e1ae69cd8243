package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-manager.com/project-manager/internal/data_models"
)

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}
