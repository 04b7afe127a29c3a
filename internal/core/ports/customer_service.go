package ports

import (
	"context"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

// CreateCustomerInput carries all data needed to create a customer.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// UpdateCustomerInput carries a partial customer patch. Nil fields are left
// untouched.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// CustomerPage is the paginated list envelope.
type CustomerPage struct {
	Page         int
	Limit        int
	TotalRecords int64
	TotalPages   int
	Data         []*domain.Customer
}

type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	// List returns one page of customers. Page and limit fall back to their
	// defaults when out of range.
	List(ctx context.Context, page, limit int) (*CustomerPage, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
