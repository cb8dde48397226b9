package httpd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/config"
	"github.com/RubachokBoss/task-manager/internal/middleware"
	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/service"
	"github.com/RubachokBoss/task-manager/internal/session"
)

type stubUserService struct {
	create  func(ctx context.Context, req *models.CreateUserRequest) (*models.UserDetails, error)
	getByID func(ctx context.Context, id int64) (*models.UserDetails, error)
	getAll  func(ctx context.Context) ([]models.UserSummary, error)
	delete  func(ctx context.Context, id int64) error
}

func (s *stubUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserDetails, error) {
	return s.create(ctx, req)
}

func (s *stubUserService) GetUserByID(ctx context.Context, id int64) (*models.UserDetails, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	return s.getAll(ctx)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

type stubAuthService struct {
	login   func(ctx context.Context, req *models.LoginRequest) (*models.UserDetails, error)
	current func(ctx context.Context, userID int64) (*models.UserDetails, error)
}

func (s *stubAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.UserDetails, error) {
	return s.login(ctx, req)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID int64) (*models.UserDetails, error) {
	return s.current(ctx, userID)
}

type stubTaskService struct {
	create  func(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskDetails, error)
	getByID func(ctx context.Context, id int64) (*models.TaskDetails, error)
	getAll  func(ctx context.Context) ([]models.TaskSummary, error)
	update  func(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.TaskDetails, error)
	delete  func(ctx context.Context, id int64) error
}

func (s *stubTaskService) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskDetails, error) {
	return s.create(ctx, req)
}

func (s *stubTaskService) GetTaskByID(ctx context.Context, id int64) (*models.TaskDetails, error) {
	return s.getByID(ctx, id)
}

func (s *stubTaskService) GetAllTasks(ctx context.Context) ([]models.TaskSummary, error) {
	return s.getAll(ctx)
}

func (s *stubTaskService) UpdateTask(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.TaskDetails, error) {
	return s.update(ctx, id, req)
}

func (s *stubTaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

type stubAssignmentService struct {
	create func(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error)
	getAll func(ctx context.Context) ([]models.Assignment, error)
}

func (s *stubAssignmentService) CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	return s.create(ctx, req)
}

func (s *stubAssignmentService) GetAllAssignments(ctx context.Context) ([]models.Assignment, error) {
	return s.getAll(ctx)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

type testServer struct {
	users       *stubUserService
	auth        *stubAuthService
	tasks       *stubTaskService
	assignments *stubAssignmentService
	db          *stubPinger
	sessions    *session.Manager
	router      chi.Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		users:       &stubUserService{},
		auth:        &stubAuthService{},
		tasks:       &stubTaskService{},
		assignments: &stubAssignmentService{},
		db:          &stubPinger{},
		sessions: session.NewManager(config.SessionConfig{
			Secret:     "handler-secret",
			TTL:        time.Hour,
			CookieName: "session",
		}),
	}

	handler := NewHandler(ts.users, ts.auth, ts.tasks, ts.assignments, ts.sessions, ts.db, zerolog.Nop())

	router := chi.NewRouter()
	router.Use(middleware.Session(ts.sessions, zerolog.Nop()))
	handler.RegisterRoutes(router)
	ts.router = router

	return ts
}

func (ts *testServer) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) sessionCookie(t *testing.T, userID int64) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := ts.sessions.SetCookie(rec, userID); err != nil {
		t.Fatalf("SetCookie() error = %v", err)
	}
	return rec.Result().Cookies()[0]
}

func assertResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, body string) {
	t.Helper()

	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != body {
		t.Errorf("body = %s, want %s", got, body)
	}
}

func svcErr(kind service.ErrKind, message string) error {
	return &service.Error{Kind: kind, Message: message}
}

func sampleUser() *models.UserDetails {
	return &models.UserDetails{
		UserSummary: models.UserSummary{ID: 1, Name: "Alice", Email: "alice@example.com"},
		Tasks:       []models.Task{},
		Assignments: []models.Assignment{},
	}
}

const sampleUserJSON = `{"id":1,"name":"Alice","email":"alice@example.com","tasks":[],"assignments":[]}`
