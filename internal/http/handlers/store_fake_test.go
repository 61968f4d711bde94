package handlers

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"task_webapp/internal/domain"
	"task_webapp/internal/repository"

	"github.com/gin-gonic/gin"
)

// memStore is an in-memory stand-in for both repositories, mirroring
// their not-found semantics (repository.ErrNotFound sentinel).
type memStore struct {
	users    map[int64]*domain.User
	tasks    map[int64]domain.Task
	nextUser int64
	nextTask int64
	failWith error // when set, every call fails with this error
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[int64]*domain.User),
		tasks: make(map[int64]domain.Task),
	}
}

func (s *memStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) Create(_ context.Context, u *domain.User) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.nextUser++
	u.ID = s.nextUser
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *memStore) ListByUser(_ context.Context, userID int64) ([]domain.Task, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	res := []domain.Task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			res = append(res, t)
		}
	}
	return res, nil
}

func (s *memStore) CreateTask(_ context.Context, t *domain.Task) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.nextTask++
	t.ID = s.nextTask
	s.tasks[t.ID] = *t
	return nil
}

func (s *memStore) Delete(_ context.Context, id int64) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *memStore) SetState(_ context.Context, id int64, state bool) (*domain.Task, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	t, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t.State = state
	s.tasks[id] = t
	return &t, nil
}

// taskStoreAdapter renames CreateTask to Create so memStore can satisfy
// both interfaces despite the clashing method name.
type taskStoreAdapter struct{ *memStore }

func (a taskStoreAdapter) Create(ctx context.Context, t *domain.Task) error {
	return a.CreateTask(ctx, t)
}

func newTestRouter(st *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(st, taskStoreAdapter{st})

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/tasks/:id", h.ListTasks)
	r.POST("/tasks/:id", h.CreateTask)
	r.DELETE("/tasks/:id", h.DeleteTask)
	r.PATCH("/tasks/:id", h.UpdateTaskState)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(s *memStore, name, email, password string) *domain.User {
	u := &domain.User{UserName: name, Email: email, Password: password}
	_ = s.Create(context.Background(), u)
	return u
}
