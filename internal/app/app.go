package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/config"
	"github.com/RubachokBoss/task-manager/internal/delivery/httpd"
	"github.com/RubachokBoss/task-manager/internal/middleware"
	"github.com/RubachokBoss/task-manager/internal/repository"
	"github.com/RubachokBoss/task-manager/internal/service"
	"github.com/RubachokBoss/task-manager/internal/service/integration"
	"github.com/RubachokBoss/task-manager/internal/session"
	"github.com/RubachokBoss/task-manager/pkg/password"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	db        *sql.DB
	publisher integration.EventPublisher
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	publisher := newPublisher(cfg.RabbitMQ, log)

	userRepo := repository.NewUserRepository(db, log)
	taskRepo := repository.NewTaskRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)

	hasher := password.NewBcryptHasher(cfg.Session.BcryptCost)

	userService := service.NewUserService(userRepo, taskRepo, assignmentRepo, hasher, publisher, log)
	authService := service.NewAuthService(userRepo, userService, hasher, log)
	taskService := service.NewTaskService(taskRepo, userRepo, assignmentRepo, publisher, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, taskRepo, userRepo, publisher, log)

	sessions := session.NewManager(cfg.Session)

	handler := httpd.NewHandler(
		userService,
		authService,
		taskService,
		assignmentService,
		sessions,
		repository.NewPostgresRepository(db, log),
		log,
	)

	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	router.Use(middleware.NewCORS(cfg.CORS))
	router.Use(middleware.Session(sessions, log))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		db:        db,
		publisher: publisher,
	}, nil
}

// newPublisher falls back to a no-op publisher so that the API keeps
// serving when the broker is disabled or down.
func newPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) integration.EventPublisher {
	if !cfg.Enabled {
		log.Info().Msg("RabbitMQ disabled, domain events will not be published")
		return integration.NewNopPublisher()
	}

	publisher, err := integration.NewRabbitMQPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create RabbitMQ publisher")
		return integration.NewNopPublisher()
	}
	return integration.NewAsyncPublisher(publisher, cfg.PublishWorkers, cfg.QueueSize, log)
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting task service on %s", a.config.Server.Address)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down task service...")

	err := a.server.Shutdown(ctx)

	if err := a.publisher.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return err
}
