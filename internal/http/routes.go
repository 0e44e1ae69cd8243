package http

import (
	"github.com/labstack/echo/v4"

	middleware "project-manager.com/project-manager/internal/http/middlewares"
	"project-manager.com/project-manager/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, limiter ratelimit.Limiter) {
	e.Use(middleware.RateLimiter(limiter))

	e.GET("/projects", h.ListProjects)
	e.POST("/projects", h.CreateProject)
	e.GET("/projects/search/:term", h.SearchProjects)
	e.GET("/projects/:id", h.GetProject)
	e.PUT("/projects/:id", h.UpdateProject)
	e.DELETE("/projects/:id", h.DeleteProject)
	e.GET("/projects/:id/task_count", h.ProjectTaskCount)
	e.GET("/projects/:id/full", h.GetProjectFull)

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.GET("/tasks/:id/collaborators", h.ListTaskCollaborators)

	e.GET("/collaborators", h.ListCollaborators)
	e.POST("/collaborators", h.CreateCollaborator)
	e.GET("/collaborators/:id", h.GetCollaborator)
	e.PUT("/collaborators/:id", h.UpdateCollaborator)
	e.DELETE("/collaborators/:id", h.DeleteCollaborator)
	e.GET("/collaborators/:id/tasks", h.ListCollaboratorTasks)
	e.GET("/collaborators/:id/tasks/:date", h.ListCollaboratorTasksByDate)
}
