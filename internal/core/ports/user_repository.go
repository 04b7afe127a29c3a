package ports

import (
	"context"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

// UserRepository defines persistence operations for users. It backs both the
// auth service (create, lookup by email) and the users service.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the role of the user and returns the updated row. Role
	// is the only user field mutable through this repository.
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
}
