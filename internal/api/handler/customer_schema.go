package handler

import "time"

// --- Request types ---

type createCustomerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Company string `json:"company"`
}

// updateCustomerRequest is a partial patch: nil fields are left untouched,
// present fields must still satisfy their constraints.
type updateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"   validate:"omitempty,min=1"`
	Company *string `json:"company"`
}

// --- Response types ---

// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// customerListResponse is the pagination envelope. The field names follow
// the public API contract.
type customerListResponse struct {
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
	TotalRecords int64              `json:"totalRecords"`
	TotalPages   int                `json:"totalPages"`
	Data         []customerResponse `json:"data"`
}
