package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "project-manager.com/project-manager/internal/configs"
	httpapi "project-manager.com/project-manager/internal/http"
	middleware "project-manager.com/project-manager/internal/http/middlewares"
	"project-manager.com/project-manager/internal/ratelimit"
	repository "project-manager.com/project-manager/internal/repositories"
	"project-manager.com/project-manager/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the project management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		database := config.NewDatabase(cfg.DatabaseDSN)

		projectRepo := repository.NewProjectRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		collaboratorRepo := repository.NewCollaboratorRepository(database)

		projectService := services.NewProjectService(projectRepo)
		taskService := services.NewTaskService(taskRepo, projectRepo, collaboratorRepo)
		collaboratorService := services.NewCollaboratorService(collaboratorRepo, taskRepo)

		var limiter ratelimit.Limiter
		if cfg.RedisEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit, time.Minute)
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.RequestLogger(logger))

		handler := httpapi.NewHandler(projectService, taskService, collaboratorService)
		httpapi.Register(e, handler, limiter)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
