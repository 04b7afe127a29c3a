package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty id and
// role prove the middleware ran.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Principal{ID: id, Role: role}, nil
}

// ctxToken extracts the token id and expiry injected by the Auth middleware,
// used by logout to revoke the presented token.
func ctxToken(c echo.Context) (jti string, expiresAt time.Time, err error) {
	jti, _ = c.Get("jti").(string)
	if jti == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
	}
	expiresAt, _ = c.Get("token_expires_at").(time.Time)
	return jti, expiresAt, nil
}
