package database

import (
	"database/sql"
	"fmt"

	"github.com/RubachokBoss/task-manager/internal/config"
	_ "github.com/lib/pq"
)

// NewPostgres opens the connection pool. The caller is expected to ping it.
func NewPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
