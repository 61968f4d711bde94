package repository

import (
	"context"
	"errors"

	"task_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByUser returns the user's tasks in store order (no ORDER BY).
// Always returns a non-nil slice so the route serializes [] not null.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, task_name, state, user_id FROM tasks WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.TaskName, &t.State, &t.UserID); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (task_name, user_id) VALUES ($1, $2) RETURNING id, state`,
		t.TaskName, t.UserID,
	).Scan(&t.ID, &t.State)
}

// Delete removes the task in a single conditional statement; zero rows
// affected means the task never existed (or a concurrent delete won).
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetState updates the completion flag and echoes the updated row.
// UPDATE ... RETURNING keeps the existence check and the mutation atomic.
func (r *TaskRepository) SetState(ctx context.Context, id int64, state bool) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks SET state = $1 WHERE id = $2 RETURNING id, task_name, state, user_id`,
		state, id,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.TaskName, &t.State, &t.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
