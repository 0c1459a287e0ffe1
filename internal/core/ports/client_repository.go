package ports

import (
	"context"

	"github.com/clientdesk/client-management/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
//
// Every mutating operation performs a full read-modify-write cycle against the
// backing store; implementations serving concurrent callers must serialize
// that cycle themselves.
type ClientRepository interface {
	// Save appends a new record and persists the collection. Saving an ID
	// that is already present fails with domain.ErrDuplicateClient and
	// leaves the store untouched.
	Save(ctx context.Context, client *domain.Client) error

	// FindByID returns the record with the given id, or (nil, nil) when no
	// record matches. Absence is a valid lookup outcome, not an error.
	FindByID(ctx context.Context, id string) (*domain.Client, error)

	// FindAll returns every record in insertion order.
	FindAll(ctx context.Context) ([]*domain.Client, error)

	// Update replaces the record with a matching ID wholesale and persists
	// the collection. An absent ID fails with domain.ErrClientNotFound;
	// there is no upsert.
	Update(ctx context.Context, client *domain.Client) error

	// Delete removes the record with the given id and reports whether
	// anything was removed. Deleting an absent id returns (false, nil).
	Delete(ctx context.Context, id string) (bool, error)
}
