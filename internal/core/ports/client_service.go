package ports

import (
	"context"

	"github.com/clientdesk/client-management/internal/core/domain"
)

// CreateClientInput carries all data needed to register a new client.
// Identity and creation time are assigned by the service, never by callers.
type CreateClientInput struct {
	Name     string
	LastName string
	Age      int
}

// UpdateClientInput is a partial update: nil fields keep their stored value.
type UpdateClientInput struct {
	Name     *string
	LastName *string
	Age      *int
}

// ClientService defines use-case operations for client records.
type ClientService interface {
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}
