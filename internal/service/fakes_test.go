package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/repository"
)

// memStore backs the fake repositories with the same referential rules as the schema.
type memStore struct {
	mu          sync.Mutex
	nextID      int64
	users       map[int64]models.User
	tasks       map[int64]models.Task
	assignments map[int64]models.Assignment
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[int64]models.User{},
		tasks:       map[int64]models.Task{},
		assignments: map[int64]models.Assignment{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeUserRepo struct {
	s         *memStore
	err       error
	deleteErr error
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.s.id()
	r.s.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := []models.User{}
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.users[id]
	return ok, nil
}

type fakeTaskRepo struct {
	s         *memStore
	deleteErr error
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	task.ID = r.s.id()
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTaskRepo) GetAll(_ context.Context) ([]models.Task, error) {
	return r.filter(func(models.Task) bool { return true }), nil
}

func (r *fakeTaskRepo) GetByUserID(_ context.Context, userID int64) ([]models.Task, error) {
	return r.filter(func(t models.Task) bool { return t.UserID == userID }), nil
}

func (r *fakeTaskRepo) filter(keep func(models.Task) bool) []models.Task {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tasks := []models.Task{}
	for _, t := range r.s.tasks {
		if keep(t) {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[task.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) DeleteWithAssignments(_ context.Context, id int64) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[id]; !ok {
		return 0, repository.ErrNotFound
	}
	var removed int64
	for aid, a := range r.s.assignments {
		if a.TaskID == id {
			delete(r.s.assignments, aid)
			removed++
		}
	}
	delete(r.s.tasks, id)
	return removed, nil
}

func (r *fakeTaskRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.tasks[id]
	return ok, nil
}

type fakeAssignmentRepo struct {
	s *memStore
}

func (r *fakeAssignmentRepo) Create(_ context.Context, a *models.Assignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.id()
	r.s.assignments[a.ID] = *a
	return nil
}

func (r *fakeAssignmentRepo) GetAll(_ context.Context) ([]models.Assignment, error) {
	return r.filter(func(models.Assignment) bool { return true }), nil
}

func (r *fakeAssignmentRepo) GetByTaskID(_ context.Context, taskID int64) ([]models.Assignment, error) {
	return r.filter(func(a models.Assignment) bool { return a.TaskID == taskID }), nil
}

func (r *fakeAssignmentRepo) GetByUserID(_ context.Context, userID int64) ([]models.Assignment, error) {
	return r.filter(func(a models.Assignment) bool { return a.UserID == userID }), nil
}

func (r *fakeAssignmentRepo) filter(keep func(models.Assignment) bool) []models.Assignment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Assignment{}
	for _, a := range r.s.assignments {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.DomainEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event *models.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, *event)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) types() []models.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var errStoreDown = errors.New("connection refused")
