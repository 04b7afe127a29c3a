package ports

import (
	"context"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

// TaskFilter restricts a task listing. AssignedToID is set by the service
// layer from the authenticated principal, never from user input.
type TaskFilter struct {
	AssignedToID string // empty = no filter (admin); non-empty = scoped to assignee
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	// FindByID returns the task with its assignee and customer joined in.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks matching filter ordered by creation time descending,
	// with assignee and customer joined in. The filter is applied in the
	// query itself.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	// UpdateStatus sets the status of the task and returns the updated row.
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
}
