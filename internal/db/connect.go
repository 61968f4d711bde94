package db

import (
	"context"

	"task_webapp/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the process-wide pool. It is called once at startup;
// handlers share the returned pool for the life of the process.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
