package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-backend/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrCustomerNotFound, http.StatusNotFound, "customer not found"},
		{domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrAssigneeNotFound, http.StatusNotFound, "assigned user not found"},
		{domain.ErrCustomerExists, http.StatusConflict, "email or phone already exists"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	}

	for _, tc := range cases {
		code, msg := render(t, tc.err)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Fatalf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update task status"), domain.ErrTaskNotFound)
	code, msg := render(t, wrapped)
	if code != http.StatusNotFound || msg != "task not found" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusBadRequest, "name is required"))
	if code != http.StatusBadRequest || msg != "name is required" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestErrorHandler_UnclassifiedErrorIsSanitized(t *testing.T) {
	code, msg := render(t, errors.New(`pq: relation "customers" does not exist`))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" || strings.Contains(msg, "relation") {
		t.Fatalf("internal error text leaked: %q", msg)
	}
}
