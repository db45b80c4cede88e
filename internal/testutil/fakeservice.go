// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"caseshop/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	users  map[string]fakeUser // email -> user
	tokens map[string]string   // token -> user id
	tasks  map[string][]service.Task
	nextID int

	// Error injection for testing
	LoginErr      error
	RegisterErr   error
	MeErr         error
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error

	// Hooks run before the call returns, to interleave other work with an
	// in-flight request.
	MeHook         func()
	ListTasksHook  func()
	CreateTaskHook func()

	// Calls counts invocations per method name.
	Calls map[string]int
}

type fakeUser struct {
	profile  service.Profile
	password string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		users:  make(map[string]fakeUser),
		tokens: make(map[string]string),
		tasks:  make(map[string][]service.Task),
		Calls:  make(map[string]int),
	}
}

// AddUser registers a user and returns its profile.
func (f *FakeService) AddUser(name, email, password string) service.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addUserLocked(name, email, password)
}

// IssueToken creates a valid token for email.
func (f *FakeService) IssueToken(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return ""
	}
	return f.issueLocked(u.profile.ID)
}

// RevokeToken makes token invalid, like an expired JWT.
func (f *FakeService) RevokeToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
}

// AddTask stores a task for the user owning email.
func (f *FakeService) AddTask(email string, draft service.TaskDraft) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createLocked(f.users[email].profile.ID, draft)
}

// TasksOf returns the stored tasks of the user owning email.
func (f *FakeService) TasksOf(email string) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	id := f.users[email].profile.ID
	out := make([]service.Task, len(f.tasks[id]))
	copy(out, f.tasks[id])
	return out
}

// CallCount returns how many times method was called.
func (f *FakeService) CallCount(method string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.Calls[method]
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (string, error) {
	f.count("Login")
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok || u.password != password {
		return "", fmt.Errorf("%w: Invalid email or password", service.ErrUnauthorized)
	}
	return f.issueLocked(u.profile.ID), nil
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, name, email, password string) (service.Profile, error) {
	f.count("Register")
	if f.RegisterErr != nil {
		return service.Profile{}, f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return service.Profile{}, fmt.Errorf("%w: status 400 Email already registered", service.ErrRejected)
	}
	return f.addUserLocked(name, email, password), nil
}

// Me implements service.Service.
func (f *FakeService) Me(ctx context.Context, token string) (service.Profile, error) {
	f.count("Me")
	if f.MeHook != nil {
		f.MeHook()
	}
	if f.MeErr != nil {
		return service.Profile{}, f.MeErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	uid, err := f.userLocked(token)
	if err != nil {
		return service.Profile{}, err
	}
	for _, u := range f.users {
		if u.profile.ID == uid {
			return u.profile, nil
		}
	}
	return service.Profile{}, fmt.Errorf("%w: user not found", service.ErrNotFound)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, token string) ([]service.Task, error) {
	f.count("ListTasks")
	if f.ListTasksHook != nil {
		f.ListTasksHook()
	}
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	uid, err := f.userLocked(token)
	if err != nil {
		return nil, err
	}
	out := make([]service.Task, len(f.tasks[uid]))
	copy(out, f.tasks[uid])
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, token string, draft service.TaskDraft) (service.Task, error) {
	f.count("CreateTask")
	if f.CreateTaskHook != nil {
		f.CreateTaskHook()
	}
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	if err := draft.Validate(); err != nil {
		return service.Task{}, fmt.Errorf("%w: status 422 %v", service.ErrRejected, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, err := f.userLocked(token)
	if err != nil {
		return service.Task{}, err
	}
	return f.createLocked(uid, draft), nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, token, id string, patch service.TaskPatch) (service.Task, error) {
	f.count("UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	if err := patch.Validate(); err != nil {
		return service.Task{}, fmt.Errorf("%w: status 422 %v", service.ErrRejected, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, err := f.userLocked(token)
	if err != nil {
		return service.Task{}, err
	}
	for i, t := range f.tasks[uid] {
		if t.ID == id {
			t = patch.Apply(t)
			t.UpdatedAt = time.Now().UTC()
			f.tasks[uid][i] = t
			return t, nil
		}
	}
	return service.Task{}, fmt.Errorf("%w: Task not found", service.ErrNotFound)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, token, id string) error {
	f.count("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, err := f.userLocked(token)
	if err != nil {
		return err
	}
	tasks := f.tasks[uid]
	for i, t := range tasks {
		if t.ID == id {
			f.tasks[uid] = append(tasks[:i:i], tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: Task not found", service.ErrNotFound)
}

func (f *FakeService) count(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[method]++
}

func (f *FakeService) addUserLocked(name, email, password string) service.Profile {
	f.nextID++
	p := service.Profile{
		ID:        fmt.Sprintf("user-%d", f.nextID),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	f.users[email] = fakeUser{profile: p, password: password}
	return p
}

func (f *FakeService) issueLocked(userID string) string {
	f.nextID++
	token := fmt.Sprintf("token-%d", f.nextID)
	f.tokens[token] = userID
	return token
}

func (f *FakeService) userLocked(token string) (string, error) {
	uid, ok := f.tokens[token]
	if !ok {
		return "", fmt.Errorf("%w: Could not validate credentials", service.ErrUnauthorized)
	}
	return uid, nil
}

func (f *FakeService) createLocked(userID string, draft service.TaskDraft) service.Task {
	f.nextID++
	now := time.Now().UTC()
	t := service.Task{
		ID:          fmt.Sprintf("task-%d", f.nextID),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      orDefault(draft.Status, service.StatusPending),
		Priority:    orDefault(draft.Priority, service.PriorityMedium),
		Category:    orDefault(draft.Category, service.CategoryGeneral),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.tasks[userID] = append(f.tasks[userID], t)
	return t
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
