// Package tasks caches the signed-in user's dashboard tasks. The cache only
// ever holds records the server has confirmed.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"caseshop/internal/logging"
	"caseshop/internal/notify"
	"caseshop/internal/service"
)

// ErrStale is returned when the cache was reset while a request was in
// flight. The response was not applied.
var ErrStale = errors.New("task cache was reset during the request")

// TokenFunc returns the bearer token of the current session.
type TokenFunc func() string

// Collection is the local task cache.
type Collection struct {
	svc      service.Service
	token    TokenFunc
	notifier notify.Notifier
	log      *zap.Logger

	mu     sync.Mutex
	tasks  []service.Task
	loaded bool
	// issued is the newest load ticket; applied is the newest ticket whose
	// result (or a later confirmed mutation) is in the cache.
	issued  uint64
	applied uint64
	// epoch advances on Reset; responses from an older epoch are dropped.
	epoch          uint64
	onUnauthorized []func(context.Context)
}

// New creates an empty collection.
func New(svc service.Service, token TokenFunc, notifier notify.Notifier, log *zap.Logger) *Collection {
	return &Collection{
		svc:      svc,
		token:    token,
		notifier: notifier,
		log:      logging.OrNop(log),
	}
}

// OnUnauthorized registers fn to run when the server rejects the token.
func (c *Collection) OnUnauthorized(fn func(context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
}

// Load replaces the cache with the server's list. On failure the cache is
// left as it was.
func (c *Collection) Load(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	ticket, epoch := c.issued, c.epoch
	c.mu.Unlock()

	list, err := c.svc.ListTasks(ctx, c.token())

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		c.mu.Unlock()
		c.fail(ctx, "Error loading tasks", err)
		return fmt.Errorf("load tasks: %w", err)
	}
	if ticket < c.applied {
		c.mu.Unlock()
		c.log.Debug("discarding stale task list", zap.Uint64("ticket", ticket), zap.Uint64("applied", c.applied))
		return nil
	}
	c.tasks = append([]service.Task(nil), list...)
	c.applied = ticket
	c.loaded = true
	c.mu.Unlock()

	c.log.Debug("tasks loaded", zap.Int("count", len(list)))
	return nil
}

// Create adds a task once the server confirms it.
func (c *Collection) Create(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	if err := draft.Validate(); err != nil {
		return service.Task{}, err
	}
	t, err := c.create(ctx, draft)
	if err != nil {
		if !errors.Is(err, ErrStale) {
			c.fail(ctx, "Error saving task", err)
		}
		return service.Task{}, err
	}
	c.notifier.Show("Task created successfully!", notify.Success)
	return t, nil
}

// Record creates a background task. Failures are logged, not surfaced.
func (c *Collection) Record(ctx context.Context, draft service.TaskDraft) {
	t, err := c.create(ctx, draft)
	if err != nil {
		c.log.Warn("failed to record task", zap.String("title", draft.Title), zap.Error(err))
		return
	}
	c.log.Debug("task recorded", zap.String("id", t.ID))
}

// Update applies patch once the server confirms it.
func (c *Collection) Update(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	if err := patch.Validate(); err != nil {
		return service.Task{}, err
	}

	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	t, err := c.svc.UpdateTask(ctx, c.token(), id, patch)
	if err == nil {
		err = c.merge(epoch, t)
	}
	if err != nil {
		if !errors.Is(err, ErrStale) {
			c.fail(ctx, "Error saving task", err)
		}
		return service.Task{}, err
	}
	c.notifier.Show("Task updated successfully!", notify.Success)
	return t, nil
}

// Delete removes a task once the server confirms it.
func (c *Collection) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	if err := c.svc.DeleteTask(ctx, c.token(), id); err != nil {
		c.mu.Lock()
		stale := epoch != c.epoch
		c.mu.Unlock()
		if stale {
			return ErrStale
		}
		c.fail(ctx, "Error deleting task", err)
		return fmt.Errorf("delete task: %w", err)
	}

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		return ErrStale
	}
	for i, t := range c.tasks {
		if t.ID == id {
			c.tasks = append(c.tasks[:i:i], c.tasks[i+1:]...)
			break
		}
	}
	c.supersedeLoadsLocked()
	c.mu.Unlock()

	c.notifier.Show("Task deleted successfully", notify.Success)
	return nil
}

// Tasks returns a copy of the cache in server order.
func (c *Collection) Tasks() []service.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]service.Task(nil), c.tasks...)
}

// Loaded reports whether a load has succeeded since the last Reset.
func (c *Collection) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Find returns the cached task with id.
func (c *Collection) Find(id string) (service.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Reset discards the cache. In-flight responses are dropped when they land.
func (c *Collection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = nil
	c.loaded = false
	c.epoch++
}

func (c *Collection) create(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	t, err := c.svc.CreateTask(ctx, c.token(), draft)
	if err != nil {
		return service.Task{}, fmt.Errorf("create task: %w", err)
	}
	if err := c.merge(epoch, t); err != nil {
		return service.Task{}, err
	}
	return t, nil
}

// merge inserts or replaces t by id.
func (c *Collection) merge(epoch uint64, t service.Task) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return ErrStale
	}
	replaced := false
	for i := range c.tasks {
		if c.tasks[i].ID == t.ID {
			c.tasks[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		c.tasks = append(c.tasks, t)
	}
	c.supersedeLoadsLocked()
	return nil
}

// supersedeLoadsLocked marks every load issued so far as older than the
// cache.
func (c *Collection) supersedeLoadsLocked() {
	c.issued++
	c.applied = c.issued
}

// fail queues msg and, for auth failures, runs the unauthorized hooks.
func (c *Collection) fail(ctx context.Context, msg string, err error) {
	c.log.Warn(msg, zap.Error(err))
	c.notifier.Show(msg, notify.Error)
	if service.Kind(err) != service.KindAuth {
		return
	}
	c.mu.Lock()
	hooks := append([]func(context.Context){}, c.onUnauthorized...)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn(ctx)
	}
}
