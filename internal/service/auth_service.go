package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/repository"
	"github.com/RubachokBoss/task-manager/pkg/password"
)

type AuthService interface {
	// Login never reveals whether the email or the password was wrong.
	Login(ctx context.Context, req *models.LoginRequest) (*models.UserDetails, error)
	CurrentUser(ctx context.Context, userID int64) (*models.UserDetails, error)
}

type authService struct {
	userRepo    repository.UserRepository
	userService UserService
	hasher      password.Hasher
	logger      zerolog.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	userService UserService,
	hasher password.Hasher,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		userService: userService,
		hasher:      hasher,
		logger:      logger,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.UserDetails, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, newError(KindUnexpected, msgInternal, fmt.Errorf("failed to get user by email: %w", err))
	}

	if user == nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.logger.Info().Str("email", req.Email).Msg("Login rejected")
		return nil, newError(KindUnauthenticated, msgUnauthorized, nil)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("User logged in")

	return s.userService.GetUserByID(ctx, user.ID)
}

// CurrentUser resolves the session's user; a user deleted since login reads
// as unauthenticated.
func (s *authService) CurrentUser(ctx context.Context, userID int64) (*models.UserDetails, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, newError(KindUnauthenticated, "Unauthorized", err)
		}
		return nil, err
	}
	return user, nil
}
