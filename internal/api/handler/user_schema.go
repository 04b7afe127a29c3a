package handler

import "time"

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
