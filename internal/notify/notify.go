// Package notify implements the single-slot, auto-expiring notification
// ("toast") queue.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is how long a toast stays visible unless configured.
const DefaultDuration = 4 * time.Second

// Kind is the severity of a toast.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
)

// Toast is one transient message.
type Toast struct {
	ID       string
	Message  string
	Kind     Kind
	ShownAt  time.Time
	Duration time.Duration
}

// Notifier is what stores use to surface messages.
type Notifier interface {
	Show(message string, kind Kind) Toast
}

// Timer is the part of *time.Timer the queue needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. It matches time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

// Option configures a Queue.
type Option func(*Queue)

// WithAfterFunc replaces the timer factory (for tests).
func WithAfterFunc(fn AfterFunc) Option {
	return func(q *Queue) { q.afterFunc = fn }
}

// WithClock replaces time.Now (for tests).
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// Queue holds at most one visible toast. Showing a new toast replaces the
// visible one and re-arms the expiry timer; last write wins.
type Queue struct {
	mu        sync.Mutex
	current   *Toast
	timer     Timer
	duration  time.Duration
	afterFunc AfterFunc
	now       func() time.Time
	listeners []func(t Toast, visible bool)
}

// New creates a queue whose toasts expire after d (DefaultDuration if d <= 0).
func New(d time.Duration, opts ...Option) *Queue {
	if d <= 0 {
		d = DefaultDuration
	}
	q := &Queue{
		duration: d,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// OnChange registers fn to observe every show and dismissal.
// visible is false when t was removed.
func (q *Queue) OnChange(fn func(t Toast, visible bool)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.listeners = append(q.listeners, fn)
}

// Show displays message for the default duration.
func (q *Queue) Show(message string, kind Kind) Toast {
	return q.ShowFor(message, kind, q.duration)
}

// ShowFor displays message for d, replacing any visible toast.
func (q *Queue) ShowFor(message string, kind Kind, d time.Duration) Toast {
	if d <= 0 {
		d = q.duration
	}
	t := Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Kind:     kind,
		ShownAt:  q.now(),
		Duration: d,
	}

	q.mu.Lock()
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.current = &t
	listeners := q.snapshotListeners()
	q.mu.Unlock()

	for _, fn := range listeners {
		fn(t, true)
	}

	// Armed outside the lock: an AfterFunc may run its callback inline.
	id := t.ID
	timer := q.afterFunc(d, func() { q.expire(id) })
	q.mu.Lock()
	if q.current != nil && q.current.ID == id {
		q.timer = timer
	} else {
		timer.Stop()
	}
	q.mu.Unlock()
	return t
}

// Dismiss hides the visible toast, if any.
func (q *Queue) Dismiss() {
	q.mu.Lock()
	if q.current == nil {
		q.mu.Unlock()
		return
	}
	t := q.clearLocked()
	listeners := q.snapshotListeners()
	q.mu.Unlock()

	for _, fn := range listeners {
		fn(t, false)
	}
}

// Current returns the visible toast.
func (q *Queue) Current() (Toast, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return Toast{}, false
	}
	return *q.current, true
}

// expire clears the toast only if it is still the one the timer was armed for.
func (q *Queue) expire(id string) {
	q.mu.Lock()
	if q.current == nil || q.current.ID != id {
		q.mu.Unlock()
		return
	}
	t := q.clearLocked()
	listeners := q.snapshotListeners()
	q.mu.Unlock()

	for _, fn := range listeners {
		fn(t, false)
	}
}

func (q *Queue) clearLocked() Toast {
	t := *q.current
	q.current = nil
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	return t
}

func (q *Queue) snapshotListeners() []func(Toast, bool) {
	out := make([]func(Toast, bool), len(q.listeners))
	copy(out, q.listeners)
	return out
}
