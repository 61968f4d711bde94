package handlers

import (
	"context"

	"task_webapp/internal/domain"
)

// UserStore is the persistence gateway for users. Handlers never see
// the pool directly; the concrete implementation lives in repository.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// TaskStore is the persistence gateway for tasks.
type TaskStore interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
	SetState(ctx context.Context, id int64, state bool) (*domain.Task, error)
}

type Handler struct {
	Users UserStore
	Tasks TaskStore
}

// NewHandler wires the route handlers to their stores. Built once at
// startup and shared across requests.
func NewHandler(users UserStore, tasks TaskStore) *Handler {
	return &Handler{Users: users, Tasks: tasks}
}
