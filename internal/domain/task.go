package domain

type Task struct {
	ID       int64  `db:"id" json:"id"`
	TaskName string `db:"task_name" json:"task_name"`
	State    bool   `db:"state" json:"state"`
	UserID   int64  `db:"user_id" json:"user_id"`
}
