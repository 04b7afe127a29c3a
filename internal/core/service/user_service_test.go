package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	repo.byEmail["alice@example.com"] = &domain.User{
		ID:        "user-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      domain.RoleEmployee,
		CreatedAt: time.Now().UTC(),
	}
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.UpdateRole(context.Background(), "user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", user.Role)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.UpdateRole(context.Background(), "missing", domain.RoleAdmin)
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), "missing")
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
