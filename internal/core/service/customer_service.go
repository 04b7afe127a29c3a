package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-backend/internal/core/domain"
	"github.com/clientdesk/crm-backend/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

// List returns one page of customers together with the total record count.
// The count is queried independently of the page fetch.
func (s *CustomerService) List(ctx context.Context, page, limit int) (*ports.CustomerPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	data, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &ports.CustomerPage{
		Page:         page,
		Limit:        limit,
		TotalRecords: total,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		Data:         data,
	}, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial patch. The customer is fetched first; a missing
// row returns not-found without attempting the mutation.
func (s *CustomerService) Update(ctx context.Context, id string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Company != nil {
		customer.Company = *input.Company
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("customer updated")
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}
