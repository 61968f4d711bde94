package http

import (
	"os"
	"strconv"
	"time"

	"task_webapp/internal/http/handlers"
	"task_webapp/internal/http/middleware"
	"task_webapp/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	h := handlers.NewHandler(
		repository.NewUserRepository(db),
		repository.NewTaskRepository(db),
	)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 10
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	authRL := middleware.RedisRateLimit(authRateLimit, authRateWindow)

	// Accounts
	r.POST("/register", authRL, h.Register)
	r.POST("/login", authRL, h.Login)

	// Task CRUD. The :id segment is the owning user for GET/POST and
	// the task itself for DELETE/PATCH (gin allows one wildcard name
	// per position).
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	{
		tasks.GET("/:id", h.ListTasks)
		tasks.POST("/:id", h.CreateTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.PATCH("/:id", h.UpdateTaskState)
	}
}
