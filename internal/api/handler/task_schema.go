package handler

import "time"

type createTaskRequest struct {
	Title        string `json:"title"          validate:"required"`
	Description  string `json:"description"`
	AssignedToID string `json:"assigned_to_id" validate:"required,uuid4"`
	CustomerID   string `json:"customer_id"    validate:"required,uuid4"`
	Status       string `json:"status"         validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}

type taskResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Status       string            `json:"status"`
	AssignedToID string            `json:"assigned_to_id"`
	CustomerID   string            `json:"customer_id"`
	CreatedAt    time.Time         `json:"created_at"`
	AssignedTo   *userResponse     `json:"assigned_to,omitempty"`
	Customer     *customerResponse `json:"customer,omitempty"`
}
