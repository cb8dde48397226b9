package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/repository"
	"github.com/RubachokBoss/task-manager/internal/service/integration"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskDetails, error)
	GetTaskByID(ctx context.Context, id int64) (*models.TaskDetails, error)
	GetAllTasks(ctx context.Context) ([]models.TaskSummary, error)
	UpdateTask(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.TaskDetails, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	taskRepo       repository.TaskRepository
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	publisher      integration.EventPublisher
	logger         zerolog.Logger
}

func NewTaskService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	assignmentRepo repository.AssignmentRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) TaskService {
	return &taskService{
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskDetails, error) {
	// Owner checks come first so that a bad user_id never reaches the store.
	// A user_id sent as null names no user and is invalid rather than missing.
	if req.UserID == nil {
		if req.HasUserID {
			return nil, newError(KindBadReference, msgInvalidUserID, nil)
		}
		return nil, newError(KindBadReference, msgUserIDRequired, nil)
	}

	userExists, err := s.userRepo.Exists(ctx, *req.UserID)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to check user existence: %w", err))
	}
	if !userExists {
		return nil, newError(KindBadReference, msgInvalidUserID, nil)
	}

	if req.Title == nil || req.Description == nil || req.DueDate == nil {
		return nil, newError(KindValidation, "title, description and due_date are required", nil)
	}

	dueDate, err := models.ParseDate(*req.DueDate)
	if err != nil {
		return nil, newError(KindValidation, msgInvalidDueDate, err)
	}

	task := &models.Task{
		Title:       *req.Title,
		Description: *req.Description,
		DueDate:     dueDate,
		UserID:      *req.UserID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, newError(KindBadReference, msgInvalidUserID, err)
		}
		return nil, newError(KindValidation, "Failed to create task", err)
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", task.UserID).
		Msg("Task created")

	event := newEvent(models.EventTaskCreated, task.ID)
	event.UserID = &task.UserID
	publishEvent(ctx, s.publisher, s.logger, event)

	return &models.TaskDetails{Task: *task, Assignments: []models.Assignment{}}, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id int64) (*models.TaskDetails, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, task)
}

func (s *taskService) getTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get task: %w", err))
	}
	if task == nil {
		return nil, newError(KindNotFound, msgTaskNotFound, nil)
	}
	return task, nil
}

func (s *taskService) details(ctx context.Context, task *models.Task) (*models.TaskDetails, error) {
	assignments, err := s.assignmentRepo.GetByTaskID(ctx, task.ID)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get task assignments: %w", err))
	}
	return &models.TaskDetails{Task: *task, Assignments: assignments}, nil
}

func (s *taskService) GetAllTasks(ctx context.Context) ([]models.TaskSummary, error) {
	tasks, err := s.taskRepo.GetAll(ctx)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get all tasks: %w", err))
	}

	summaries := make([]models.TaskSummary, 0, len(tasks))
	for i := range tasks {
		summaries = append(summaries, tasks[i].Summary())
	}

	return summaries, nil
}

// UpdateTask overwrites only the fields present in req. due_date goes
// through the same format check as on creation.
func (s *taskService) UpdateTask(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.TaskDetails, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := models.ParseDate(*req.DueDate)
		if err != nil {
			return nil, newError(KindValidation, msgInvalidDueDate, err)
		}
		task.DueDate = dueDate
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, msgTaskNotFound, err)
		}
		return nil, newError(KindUnexpected, "Failed to update task", err)
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("Task updated")

	publishEvent(ctx, s.publisher, s.logger, newEvent(models.EventTaskUpdated, task.ID))

	return s.details(ctx, task)
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.getTask(ctx, id); err != nil {
		return err
	}

	removed, err := s.taskRepo.DeleteWithAssignments(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return newError(KindNotFound, msgTaskNotFound, err)
		case errors.Is(err, repository.ErrForeignKey), errors.Is(err, repository.ErrConstraint):
			return newError(KindIntegrity, msgTaskDeleteIntegrity, err)
		default:
			return newError(KindUnexpected, "An error occurred while deleting task", err)
		}
	}

	s.logger.Info().
		Int64("task_id", id).
		Int64("assignments_removed", removed).
		Msg("Task deleted")

	publishEvent(ctx, s.publisher, s.logger, newEvent(models.EventTaskDeleted, id))

	return nil
}
