package handler

import (
	"time"

	"github.com/clientdesk/client-management/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// createClientRequest carries the caller-supplied fields for registration.
// Age is a pointer so a literal 0 survives the required check.
type createClientRequest struct {
	Name     string `json:"name"      validate:"required,min=1,max=100"`
	LastName string `json:"last_name" validate:"required,min=1,max=100"`
	Age      *int   `json:"age"       validate:"required,gte=0,lte=150"`
}

// updateClientRequest is a partial update: fields absent from the payload keep
// their stored value, fields present are validated against the same bounds as
// registration.
type updateClientRequest struct {
	Name     *string `json:"name"      validate:"omitempty,min=1,max=100"`
	LastName *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Age      *int    `json:"age"       validate:"omitempty,gte=0,lte=150"`
}

// clientResponse is the wire shape of a client record, identical for single
// and list reads.
type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		LastName:  c.LastName,
		Age:       c.Age,
		CreatedAt: c.CreatedAt,
	}
}
