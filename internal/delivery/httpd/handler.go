package httpd

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/service"
	"github.com/RubachokBoss/task-manager/internal/session"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	userService       service.UserService
	authService       service.AuthService
	taskService       service.TaskService
	assignmentService service.AssignmentService
	sessions          *session.Manager
	db                Pinger
	logger            zerolog.Logger
}

func NewHandler(
	userService service.UserService,
	authService service.AuthService,
	taskService service.TaskService,
	assignmentService service.AssignmentService,
	sessions *session.Manager,
	db Pinger,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		userService:       userService,
		authService:       authService,
		taskService:       taskService,
		assignmentService: assignmentService,
		sessions:          sessions,
		db:                db,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.Home)
	router.Get("/health", h.HealthCheck)
	router.Get("/ready", h.ReadyCheck)

	router.Get("/check_session", h.CheckSession)
	router.Post("/login", h.Login)
	router.Delete("/logout", h.Logout)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.GetAllUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id:[0-9]+}", h.GetUserByID)
		r.Delete("/{id:[0-9]+}", h.DeleteUser)
	})

	router.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.GetAllTasks)
		r.Post("/", h.CreateTask)
		r.Get("/{id:[0-9]+}", h.GetTaskByID)
		r.Patch("/{id:[0-9]+}", h.UpdateTask)
		r.Delete("/{id:[0-9]+}", h.DeleteTask)
	})

	router.Route("/assignments", func(r chi.Router) {
		r.Get("/", h.GetAllAssignments)
		r.Post("/", h.CreateAssignment)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<h1>Task Management App</h1>"))
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "task-service",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) ReadyCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.requestLogger(r).Warn().Err(err).Msg("Readiness check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
