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

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error)
	GetAllAssignments(ctx context.Context) ([]models.Assignment, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	taskRepo       repository.TaskRepository
	userRepo       repository.UserRepository
	publisher      integration.EventPublisher
	logger         zerolog.Logger
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	if req.TaskID == nil || req.UserID == nil || req.Status == nil {
		return nil, newError(KindValidation, "task_id, user_id and status are required", nil)
	}

	taskExists, err := s.taskRepo.Exists(ctx, *req.TaskID)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to check task existence: %w", err))
	}
	if !taskExists {
		return nil, newError(KindBadReference, msgInvalidTaskID, nil)
	}

	userExists, err := s.userRepo.Exists(ctx, *req.UserID)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to check user existence: %w", err))
	}
	if !userExists {
		return nil, newError(KindBadReference, msgInvalidUserID, nil)
	}

	assignment := &models.Assignment{
		TaskID: *req.TaskID,
		UserID: *req.UserID,
		Status: *req.Status,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, newError(KindBadReference, "Invalid task_id or user_id", err)
		}
		return nil, newError(KindValidation, "Failed to create assignment", err)
	}

	s.logger.Info().
		Int64("assignment_id", assignment.ID).
		Int64("task_id", assignment.TaskID).
		Int64("user_id", assignment.UserID).
		Msg("Assignment created")

	event := newEvent(models.EventAssignmentCreated, assignment.ID)
	event.TaskID = &assignment.TaskID
	event.UserID = &assignment.UserID
	publishEvent(ctx, s.publisher, s.logger, event)

	return assignment, nil
}

func (s *assignmentService) GetAllAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get all assignments: %w", err))
	}
	return assignments, nil
}
