package ports

import (
	"context"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
}
