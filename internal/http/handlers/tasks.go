package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"task_webapp/internal/domain"
	"task_webapp/internal/logger"
	"task_webapp/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateTaskRequest struct {
	TaskName string `json:"task_name"`
}

type UpdateTaskStateRequest struct {
	State *bool `json:"state"`
}

func (h *Handler) ListTasks(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		logger.Error("list tasks: user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	tasks, err := h.Tasks.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("list tasks failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask validates the payload and the owner before touching the
// tasks table, so a 400 or 404 never leaves a row behind.
func (h *Handler) CreateTask(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	var req CreateTaskRequest
	if err := c.BindJSON(&req); err != nil || req.TaskName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "task_name is required"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		logger.Error("create task: user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	task := &domain.Task{TaskName: req.TaskName, UserID: userID}
	if err := h.Tasks.Create(ctx, task); err != nil {
		logger.Error("create task failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "task created successfully", "task": task})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
			return
		}
		logger.Error("delete task failed", "error", err, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

func (h *Handler) UpdateTaskState(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}

	var req UpdateTaskStateRequest
	if err := c.BindJSON(&req); err != nil || req.State == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "state field is required"})
		return
	}

	task, err := h.Tasks.SetState(c.Request.Context(), taskID, *req.State)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
			return
		}
		logger.Error("update task state failed", "error", err, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task state updated successfully", "task": task})
}
