package notify

import (
	"sync"
	"time"
)

// Recorder is a Notifier that keeps every toast it is given. The last one
// is the visible one.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

// Show implements Notifier.
func (r *Recorder) Show(message string, kind Kind) Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := Toast{
		ID:       time.Now().Format(time.RFC3339Nano),
		Message:  message,
		Kind:     kind,
		ShownAt:  time.Now(),
		Duration: DefaultDuration,
	}
	r.toasts = append(r.toasts, t)
	return t
}

// Toasts returns everything shown so far.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

// Last returns the most recent toast.
func (r *Recorder) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}

// Messages returns the text of every toast in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.toasts))
	for i, t := range r.toasts {
		out[i] = t.Message
	}
	return out
}

// Reset forgets recorded toasts.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = nil
}
