package ports

import (
	"context"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task. Status defaults
// to PENDING when empty.
type CreateTaskInput struct {
	Title        string
	Description  string
	AssignedToID string
	CustomerID   string
	Status       domain.TaskStatus
}

type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	// List returns the tasks visible to the principal: all tasks for ADMIN,
	// otherwise only tasks assigned to the principal.
	List(ctx context.Context, principal domain.Principal) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
}
