package ports

import (
	"context"
	"time"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token identified by jti until its expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}
