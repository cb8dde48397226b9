package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/repository"
	"github.com/RubachokBoss/task-manager/internal/service/integration"
	"github.com/RubachokBoss/task-manager/pkg/password"
)

type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserDetails, error)
	GetUserByID(ctx context.Context, id int64) (*models.UserDetails, error)
	GetAllUsers(ctx context.Context) ([]models.UserSummary, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	userRepo       repository.UserRepository
	taskRepo       repository.TaskRepository
	assignmentRepo repository.AssignmentRepository
	hasher         password.Hasher
	publisher      integration.EventPublisher
	logger         zerolog.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	assignmentRepo repository.AssignmentRepository,
	hasher password.Hasher,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) UserService {
	return &userService{
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		assignmentRepo: assignmentRepo,
		hasher:         hasher,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserDetails, error) {
	if req.Name == nil || req.Email == nil || req.Password == nil {
		return nil, newError(KindValidation, "name, email and password are required", nil)
	}

	hash, err := s.hasher.Hash(*req.Password)
	if err != nil {
		return nil, newError(KindValidation, "Failed to create user", err)
	}

	user := &models.User{
		Name:         *req.Name,
		Email:        *req.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(KindValidation, msgEmailTaken, err)
		}
		return nil, newError(KindValidation, "Failed to create user", err)
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Msg("User created")

	publishEvent(ctx, s.publisher, s.logger, newEvent(models.EventUserCreated, user.ID))

	return &models.UserDetails{
		UserSummary: user.Summary(),
		Tasks:       []models.Task{},
		Assignments: []models.Assignment{},
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.UserDetails, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get user: %w", err))
	}
	if user == nil {
		return nil, newError(KindNotFound, msgUserNotFound, nil)
	}

	return s.details(ctx, user)
}

func (s *userService) details(ctx context.Context, user *models.User) (*models.UserDetails, error) {
	tasks, err := s.taskRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get user tasks: %w", err))
	}

	assignments, err := s.assignmentRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get user assignments: %w", err))
	}

	return &models.UserDetails{
		UserSummary: user.Summary(),
		Tasks:       tasks,
		Assignments: assignments,
	}, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get all users: %w", err))
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}

	return summaries, nil
}

// DeleteUser does not cascade: the user's tasks and assignments keep their
// user_id.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get user: %w", err))
	}
	if user == nil {
		return newError(KindNotFound, msgUserNotFound, nil)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newError(KindNotFound, msgUserNotFound, err)
		}
		return newError(KindUnexpected, "An error occurred while deleting user", err)
	}

	s.logger.Info().
		Int64("user_id", id).
		Msg("User deleted")

	publishEvent(ctx, s.publisher, s.logger, newEvent(models.EventUserDeleted, id))

	return nil
}
