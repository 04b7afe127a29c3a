package ports

import (
	"context"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	// List returns at most limit customers starting at offset, ordered by
	// creation time descending.
	List(ctx context.Context, offset, limit int) ([]*domain.Customer, error)
	// Count returns the total number of customers, independent of paging.
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
}
