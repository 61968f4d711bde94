package handlers

import (
	"errors"
	"net/http"

	"task_webapp/internal/domain"
	"task_webapp/internal/logger"
	"task_webapp/internal/repository"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "password is required"})
		return
	}

	ctx := c.Request.Context()

	_, err := h.Users.GetByEmail(ctx, req.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Error("register: lookup by email failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	user := &domain.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.Users.Create(ctx, user); err != nil {
		logger.Error("register: create user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully"})
}

// Login compares the stored secret with the provided one and answers
// with a single undifferentiated 401 on any mismatch, so callers cannot
// probe which emails are registered.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
		return
	}

	ctx := c.Request.Context()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		logger.Error("login: lookup by email failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	if user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	tasks, err := h.Tasks.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Error("login: list tasks failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"user_name":  user.UserName,
		"email":      user.Email,
		"created_in": user.CreatedIn,
		"tasks":      tasks,
	})
}
