package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the workflow state of a task. Any status may follow
// any other; there is no transition guard.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

var ErrTaskNotFound = errors.New("task not found")

// ErrAssigneeNotFound signals that a task references a non-existent user.
var ErrAssigneeNotFound = errors.New("assigned user not found")

// IsValid reports whether s is a member of the status enumeration.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of work assigned to a user on behalf of a customer.
// AssignedTo and Customer are populated by queries that join the referenced
// rows; they are nil otherwise.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       TaskStatus `json:"status"`
	AssignedToID string     `json:"assigned_to_id"`
	CustomerID   string     `json:"customer_id"`
	CreatedAt    time.Time  `json:"created_at"`

	AssignedTo *User     `json:"assigned_to,omitempty"`
	Customer   *Customer `json:"customer,omitempty"`
}
