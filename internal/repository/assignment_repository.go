package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetAll(ctx context.Context) ([]models.Assignment, error)
	GetByTaskID(ctx context.Context, taskID int64) ([]models.Assignment, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Assignment, error)
}

type assignmentRepository struct {
	*PostgresRepository
}

func NewAssignmentRepository(db *sql.DB, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (task_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			assignment.TaskID,
			assignment.UserID,
			assignment.Status,
		).Scan(&assignment.ID)
		return classify(err)
	})
}

func (r *assignmentRepository) GetAll(ctx context.Context) ([]models.Assignment, error) {
	query := `
		SELECT id, task_id, user_id, status
		FROM assignments
		ORDER BY id
	`

	return r.list(ctx, query)
}

func (r *assignmentRepository) GetByTaskID(ctx context.Context, taskID int64) ([]models.Assignment, error) {
	query := `
		SELECT id, task_id, user_id, status
		FROM assignments
		WHERE task_id = $1
		ORDER BY id
	`

	return r.list(ctx, query, taskID)
}

func (r *assignmentRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Assignment, error) {
	query := `
		SELECT id, task_id, user_id, status
		FROM assignments
		WHERE user_id = $1
		ORDER BY id
	`

	return r.list(ctx, query, userID)
}

func (r *assignmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.UserID, &a.Status); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
