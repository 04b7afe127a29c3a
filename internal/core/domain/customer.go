package domain

import (
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")

// ErrCustomerExists signals a unique-constraint violation on email or phone.
var ErrCustomerExists = errors.New("email or phone already exists")

// Customer is a CRM contact record. Email and phone are unique across the
// dataset; uniqueness is enforced by the datastore.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
