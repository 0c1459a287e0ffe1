package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/clientdesk/client-management/internal/core/domain"
)

const filePerm = 0o644

// ClientRepository persists clients as a single JSON array document on disk.
//
// Every operation re-reads the whole file and every mutation rewrites it
// wholesale. A process-wide mutex serializes those read-modify-write cycles so
// concurrent HTTP handlers cannot interleave and lose updates. The file itself
// is never locked: two processes sharing one path remain unsafe.
type ClientRepository struct {
	mu   sync.Mutex
	path string
}

// NewClientRepository opens the store at path, creating an empty collection
// when the file does not exist yet.
func NewClientRepository(path string) (*ClientRepository, error) {
	r := &ClientRepository{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.writeAll(nil); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Save appends a new client. A duplicate ID fails without touching the file.
func (r *ClientRepository) Save(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.readAll()
	if err != nil {
		return err
	}
	for _, existing := range clients {
		if existing.ID == client.ID {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateClient, client.ID)
		}
	}
	return r.writeAll(append(clients, client))
}

// FindByID returns the matching client, or (nil, nil) when no record has the
// given id.
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// FindAll returns every client in insertion order.
func (r *ClientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.readAll()
}

// Update replaces the stored record with the same ID. There is no upsert: an
// absent ID fails with domain.ErrClientNotFound and the file is not written.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.readAll()
	if err != nil {
		return err
	}
	for i, existing := range clients {
		if existing.ID == client.ID {
			clients[i] = client
			return r.writeAll(clients)
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrClientNotFound, client.ID)
}

// Delete removes the client with the given id and reports whether anything
// was removed. When nothing matches, the file is not rewritten.
func (r *ClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.readAll()
	if err != nil {
		return false, err
	}
	remaining := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(clients) {
		return false, nil
	}
	if err := r.writeAll(remaining); err != nil {
		return false, err
	}
	return true, nil
}

// readAll loads the whole collection. A missing file is recreated empty
// rather than reported: the store heals external deletion. Content that does
// not parse is NOT healed; overwriting it would silently destroy whatever the
// operator could still recover by hand.
//
// Callers must hold r.mu.
func (r *ClientRepository) readAll() ([]*domain.Client, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := r.writeAll(nil); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, r.path, err)
	}
	var clients []*domain.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreCorrupted, r.path, err)
	}
	return clients, nil
}

// writeAll persists the whole collection, indented for hand inspection. An
// empty collection is written as [] so the document always stays a JSON array.
//
// Callers must hold r.mu (except during construction).
func (r *ClientRepository) writeAll(clients []*domain.Client) error {
	if clients == nil {
		clients = []*domain.Client{}
	}
	data, err := json.MarshalIndent(clients, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrStoreUnavailable, err)
	}
	if err := os.WriteFile(r.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStoreUnavailable, r.path, err)
	}
	return nil
}
