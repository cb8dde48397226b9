package service

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/RubachokBoss/task-manager/pkg/password"
)

type services struct {
	store       *memStore
	users       *fakeUserRepo
	tasks       *fakeTaskRepo
	assignments *fakeAssignmentRepo
	publisher   *fakePublisher
	hasher      password.Hasher

	userService       UserService
	authService       AuthService
	taskService       TaskService
	assignmentService AssignmentService
}

func newServices(t *testing.T) *services {
	t.Helper()

	store := newMemStore()
	s := &services{
		store:       store,
		users:       &fakeUserRepo{s: store},
		tasks:       &fakeTaskRepo{s: store},
		assignments: &fakeAssignmentRepo{s: store},
		publisher:   &fakePublisher{},
		hasher:      password.NewBcryptHasher(bcrypt.MinCost),
	}

	logger := zerolog.Nop()
	s.userService = NewUserService(s.users, s.tasks, s.assignments, s.hasher, s.publisher, logger)
	s.authService = NewAuthService(s.users, s.userService, s.hasher, logger)
	s.taskService = NewTaskService(s.tasks, s.users, s.assignments, s.publisher, logger)
	s.assignmentService = NewAssignmentService(s.assignments, s.tasks, s.users, s.publisher, logger)
	return s
}

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

func assertKind(t *testing.T, err error, kind ErrKind, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error %q, got nil", kind, message)
	}
	svcErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error %v is %T, want *service.Error", err, err)
	}
	if svcErr.Kind != kind {
		t.Errorf("Kind = %s, want %s", svcErr.Kind, kind)
	}
	if message != "" && svcErr.Message != message {
		t.Errorf("Message = %q, want %q", svcErr.Message, message)
	}
}
