package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	DeleteWithAssignments(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type taskRepository struct {
	*PostgresRepository
}

func NewTaskRepository(db *sql.DB, logger zerolog.Logger) TaskRepository {
	return &taskRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (title, description, due_date, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			task.Title,
			task.Description,
			task.DueDate,
			task.UserID,
		).Scan(&task.ID)
		return classify(err)
	})
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `
		SELECT id, title, description, due_date, user_id
		FROM tasks
		WHERE id = $1
	`

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.UserID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	query := `
		SELECT id, title, description, due_date, user_id
		FROM tasks
		ORDER BY id
	`

	return r.list(ctx, query)
}

func (r *taskRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `
		SELECT id, title, description, due_date, user_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`

	return r.list(ctx, query, userID)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.DueDate,
			&task.UserID,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3
		WHERE id = $4
	`

	return r.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			task.Title,
			task.Description,
			task.DueDate,
			task.ID,
		)
		if err != nil {
			return classify(err)
		}
		return requireAffected(res)
	})
}

// DeleteWithAssignments deletes the task's assignments and then the task in
// one transaction. It returns the number of assignments removed.
func (r *taskRepository) DeleteWithAssignments(ctx context.Context, id int64) (int64, error) {
	var removed int64

	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM assignments WHERE task_id = $1`, id)
		if err != nil {
			return classify(err)
		}
		if removed, err = res.RowsAffected(); err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
		if err != nil {
			return classify(err)
		}
		return requireAffected(res)
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func (r *taskRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}
