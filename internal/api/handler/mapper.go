package handler

import (
	"github.com/clientdesk/crm-backend/internal/core/domain"
	"github.com/clientdesk/crm-backend/internal/core/ports"
)

// --- Domain → HTTP response ---

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func toCustomerListResponse(page *ports.CustomerPage) customerListResponse {
	data := make([]customerResponse, 0, len(page.Data))
	for _, c := range page.Data {
		data = append(data, toCustomerResponse(c))
	}
	return customerListResponse{
		Page:         page.Page,
		Limit:        page.Limit,
		TotalRecords: page.TotalRecords,
		TotalPages:   page.TotalPages,
		Data:         data,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		AssignedToID: t.AssignedToID,
		CustomerID:   t.CustomerID,
		CreatedAt:    t.CreatedAt.UTC(),
	}
	if t.AssignedTo != nil {
		u := toUserResponse(t.AssignedTo)
		resp.AssignedTo = &u
	}
	if t.Customer != nil {
		c := toCustomerResponse(t.Customer)
		resp.Customer = &c
	}
	return resp
}
