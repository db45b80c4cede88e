package service

import (
	"fmt"
	"time"
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task categories.
const (
	CategoryGeneral   = "general"
	CategoryProduct   = "product"
	CategoryMarketing = "marketing"
	CategorySupport   = "support"
	CategoryInventory = "inventory"
	CategoryQuality   = "quality"
)

var (
	// Statuses lists valid task statuses in display order.
	Statuses = []string{StatusPending, StatusInProgress, StatusCompleted}

	// Priorities lists valid task priorities.
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

	// Categories lists valid task categories.
	Categories = []string{
		CategoryGeneral, CategoryProduct, CategoryMarketing,
		CategorySupport, CategoryInventory, CategoryQuality,
	}
)

// Profile is the signed-in user as reported by the API.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Task is a dashboard task owned by the remote service.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	UserID      string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskDraft is the body of a create request.
// Empty enum fields are left for the server to default.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
}

// TaskPatch is the body of an update request. Nil fields are unchanged.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.Category == nil
}

// Apply returns t with the patch fields applied.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	return t
}

// ValidateEnum checks value against allowed. Empty values pass.
func ValidateEnum(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %s", field, value)
}

// Validate checks the draft the same way the API does.
func (d TaskDraft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("title required")
	}
	if err := ValidateEnum("status", d.Status, Statuses); err != nil {
		return err
	}
	if err := ValidateEnum("priority", d.Priority, Priorities); err != nil {
		return err
	}
	return ValidateEnum("category", d.Category, Categories)
}

// Validate checks the patch fields that are set.
func (p TaskPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if p.Status != nil {
		if err := ValidateEnum("status", *p.Status, Statuses); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		if err := ValidateEnum("priority", *p.Priority, Priorities); err != nil {
			return err
		}
	}
	if p.Category != nil {
		if err := ValidateEnum("category", *p.Category, Categories); err != nil {
			return err
		}
	}
	return nil
}
