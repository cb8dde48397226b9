package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
)

func TestAssignmentRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, zerolog.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO assignments").
		WithArgs(3, 1, "in progress").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()

	a := &models.Assignment{TaskID: 3, UserID: 1, Status: "in progress"}
	if err := repo.Create(t.Context(), a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if a.ID != 8 {
		t.Errorf("ID = %d, want 8", a.ID)
	}
}

func TestAssignmentRepositoryCreateRejected(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, zerolog.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO assignments").WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err := repo.Create(t.Context(), &models.Assignment{TaskID: 99, UserID: 1, Status: "open"})
	if !errors.Is(err, ErrForeignKey) {
		t.Errorf("Create() error = %v, want ErrForeignKey", err)
	}
}

func TestAssignmentRepositoryGetByTaskID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, zerolog.Nop())

	mock.ExpectQuery("FROM assignments WHERE task_id").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "task_id", "user_id", "status"}).
			AddRow(1, 3, 1, "open").
			AddRow(2, 3, 2, "done"))

	got, err := repo.GetByTaskID(t.Context(), 3)
	if err != nil {
		t.Fatalf("GetByTaskID() error = %v", err)
	}
	if len(got) != 2 || got[1].Status != "done" {
		t.Errorf("GetByTaskID() = %+v", got)
	}
}
