package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-backend/internal/core/domain"
	"github.com/clientdesk/crm-backend/internal/core/ports"
)

type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create persists a new task and returns it with assignee and customer
// joined in. Referential integrity is enforced by the datastore.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}

	task := &domain.Task{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Status:       status,
		AssignedToID: input.AssignedToID,
		CustomerID:   input.CustomerID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("assigned_to_id", task.AssignedToID).
		Msg("task created")

	return s.repo.FindByID(ctx, task.ID)
}

// List scopes the result set by the principal: ADMIN sees every task,
// everyone else only tasks assigned to them. The filter is pushed down to
// the repository so unauthorized rows are never fetched.
func (s *TaskService) List(ctx context.Context, principal domain.Principal) ([]*domain.Task, error) {
	filter := ports.TaskFilter{}
	if !principal.IsAdmin() {
		filter.AssignedToID = principal.ID
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus fetches the task first; a missing row returns not-found
// without attempting the mutation.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	task, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", id).Str("status", string(status)).Msg("task status updated")
	return task, nil
}
