package main

import (
	"context"
	"log"
	"os"

	"task_webapp/internal/db"
	"task_webapp/internal/domain"
	"task_webapp/internal/repository"
)

// Seeds a demo account with one open task, for poking at the API locally.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	tasks := repository.NewTaskRepository(pool)
	ctx := context.Background()

	email := "demo@example.com"

	u, err := users.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("user already exists id=%d\n", u.ID)
	} else {
		u = &domain.User{
			UserName: "demo",
			Email:    email,
			Password: "demo",
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		log.Printf("user created id=%d created_in=%v\n", u.ID, u.CreatedIn)
	}

	t := &domain.Task{TaskName: "try out the API", UserID: u.ID}
	if err := tasks.Create(ctx, t); err != nil {
		log.Fatalf("create task failed: %v", err)
	}
	log.Printf("task created id=%d state=%v\n", t.ID, t.State)

	list, err := tasks.ListByUser(ctx, u.ID)
	if err != nil {
		log.Fatalf("list tasks failed: %v", err)
	}
	log.Printf("user %d now has %d task(s)\n", u.ID, len(list))
}
