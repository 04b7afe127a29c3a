package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-backend/internal/core/domain"
	"github.com/clientdesk/crm-backend/internal/core/ports"
)

type stubCustomerRepo struct {
	customers []*domain.Customer

	createErr   error
	updateCalls int
	deleteCalls int
}

func (s *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if s.createErr != nil {
		return s.createErr
	}
	clone := *c
	s.customers = append(s.customers, &clone)
	return nil
}

func (s *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	for _, c := range s.customers {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (s *stubCustomerRepo) List(_ context.Context, offset, limit int) ([]*domain.Customer, error) {
	if offset >= len(s.customers) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.customers) {
		end = len(s.customers)
	}
	page := make([]*domain.Customer, 0, end-offset)
	for _, c := range s.customers[offset:end] {
		clone := *c
		page = append(page, &clone)
	}
	return page, nil
}

func (s *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.customers)), nil
}

func (s *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	s.updateCalls++
	for i, existing := range s.customers {
		if existing.ID == c.ID {
			clone := *c
			s.customers[i] = &clone
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func (s *stubCustomerRepo) Delete(_ context.Context, id string) error {
	s.deleteCalls++
	for i, c := range s.customers {
		if c.ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func seedCustomers(repo *stubCustomerRepo, n int) {
	for i := 0; i < n; i++ {
		repo.customers = append(repo.customers, &domain.Customer{
			ID:        fmt.Sprintf("customer-%d", i),
			Name:      fmt.Sprintf("Customer %d", i),
			Email:     fmt.Sprintf("c%d@example.com", i),
			Phone:     fmt.Sprintf("+1555%04d", i),
			CreatedAt: time.Now().UTC(),
		})
	}
}

func TestCustomerService_Create(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo, zerolog.Nop())

	customer, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name:  "Acme Corp",
		Email: "hello@acme.test",
		Phone: "+15550001",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if customer.ID == "" {
		t.Fatalf("expected generated id")
	}
	if len(repo.customers) != 1 {
		t.Fatalf("expected 1 stored customer, got %d", len(repo.customers))
	}
}

func TestCustomerService_Create_Conflict(t *testing.T) {
	repo := &stubCustomerRepo{createErr: domain.ErrCustomerExists}
	svc := NewCustomerService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name:  "Acme Corp",
		Email: "hello@acme.test",
		Phone: "+15550001",
	})
	if err != domain.ErrCustomerExists {
		t.Fatalf("expected ErrCustomerExists, got %v", err)
	}
}

func TestCustomerService_List_Pagination(t *testing.T) {
	repo := &stubCustomerRepo{}
	seedCustomers(repo, 12)
	svc := NewCustomerService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(page.Data) != 5 {
		t.Fatalf("expected 5 records, got %d", len(page.Data))
	}
	if page.Data[0].ID != "customer-5" {
		t.Fatalf("expected page to start at customer-5, got %s", page.Data[0].ID)
	}
	if page.TotalRecords != 12 {
		t.Fatalf("expected totalRecords 12, got %d", page.TotalRecords)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected totalPages 3, got %d", page.TotalPages)
	}
	if page.Page != 2 || page.Limit != 5 {
		t.Fatalf("envelope mismatch: page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestCustomerService_List_Defaults(t *testing.T) {
	repo := &stubCustomerRepo{}
	seedCustomers(repo, 3)
	svc := NewCustomerService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got page=%d limit=%d", page.Page, page.Limit)
	}
	if len(page.Data) != 3 {
		t.Fatalf("expected all 3 records, got %d", len(page.Data))
	}
	if page.TotalPages != 1 {
		t.Fatalf("expected totalPages 1, got %d", page.TotalPages)
	}
}

func TestCustomerService_List_LimitCapped(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), 1, 100000)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Limit != maxLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxLimit, page.Limit)
	}
}

func TestCustomerService_Update_Partial(t *testing.T) {
	repo := &stubCustomerRepo{}
	seedCustomers(repo, 1)
	svc := NewCustomerService(repo, zerolog.Nop())

	newName := "Renamed"
	updated, err := svc.Update(context.Background(), "customer-0", ports.UpdateCustomerInput{Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.Email != "c0@example.com" {
		t.Fatalf("untouched field changed: %s", updated.Email)
	}
}

func TestCustomerService_Update_NotFoundSkipsMutation(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo, zerolog.Nop())

	newName := "Renamed"
	_, err := svc.Update(context.Background(), "missing", ports.UpdateCustomerInput{Name: &newName})
	if err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("update must not be attempted on a missing row")
	}
}

func TestCustomerService_Delete_NotFound(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
