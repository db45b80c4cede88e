// Package service defines the backend-agnostic interface for the storefront API.
package service

import "context"

// Service defines the remote operations the client depends on.
// All storefront API calls go through this interface.
// Stores and commands never speak HTTP directly.
type Service interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates an account. It does not sign the user in.
	Register(ctx context.Context, name, email, password string) (Profile, error)

	// Me resolves the profile that owns token.
	Me(ctx context.Context, token string) (Profile, error)

	// ListTasks returns every task owned by the token's user, in API order.
	ListTasks(ctx context.Context, token string) ([]Task, error)

	// CreateTask creates a task and returns the stored record.
	CreateTask(ctx context.Context, token string, draft TaskDraft) (Task, error)

	// UpdateTask applies patch and returns the stored record.
	UpdateTask(ctx context.Context, token, id string, patch TaskPatch) (Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, token, id string) error
}
