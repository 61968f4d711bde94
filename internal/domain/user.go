package domain

import "time"

type User struct {
	ID        int64     `db:"id" json:"id"`
	UserName  string    `db:"user_name" json:"user_name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedIn time.Time `db:"created_in" json:"created_in"`
}
