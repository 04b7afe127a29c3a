package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clientdesk/crm-backend/internal/core/domain"
	"github.com/clientdesk/crm-backend/internal/core/ports"
)

const (
	fkTaskAssignee = "tasks_assigned_to_id_fkey"
	fkTaskCustomer = "tasks_customer_id_fkey"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// taskSelect joins the assignee and customer so list/detail responses can
// embed both records in one round trip.
const taskSelect = `
	SELECT t.id, t.title, COALESCE(t.description, ''), t.status,
	       t.assigned_to_id, t.customer_id, t.created_at,
	       u.id, u.name, u.email, u.role, u.created_at,
	       c.id, c.name, c.email, c.phone, COALESCE(c.company, ''), c.created_at
	FROM tasks t
	JOIN users u ON u.id = t.assigned_to_id
	JOIN customers c ON c.id = t.customer_id`

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tasks (id, title, description, status, assigned_to_id, customer_id, created_at)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`,
		t.ID, t.Title, t.Description, t.Status, t.AssignedToID, t.CustomerID, t.CreatedAt,
	)
	if err != nil {
		if constraint, ok := foreignKeyViolation(err); ok {
			switch constraint {
			case fkTaskAssignee:
				return domain.ErrAssigneeNotFound
			case fkTaskCustomer:
				return domain.ErrCustomerNotFound
			}
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return t, nil
}

// List applies the assignee filter inside the query so rows invisible to the
// caller are never fetched.
func (r *TaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]*domain.Task, error) {
	query := taskSelect
	args := []any{}
	if filter.AssignedToID != "" {
		query += ` WHERE t.assigned_to_id = $1`
		args = append(args, filter.AssignedToID)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE tasks SET status = $2 WHERE id = $1
		 RETURNING id, title, COALESCE(description, ''), status, assigned_to_id, customer_id, created_at`,
		id, status,
	)

	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.AssignedToID, &t.CustomerID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return &t, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var u domain.User
	var c domain.Customer
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status,
		&t.AssignedToID, &t.CustomerID, &t.CreatedAt,
		&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt,
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.AssignedTo = &u
	t.Customer = &c
	return &t, nil
}
