package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clientdesk/client-management/internal/core/domain"
	"github.com/clientdesk/client-management/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// CreateClient registers a new client. Identity and creation time are assigned
// here: a fresh random UUID and the current UTC instant.
func (s *ClientService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		ID:        uuid.NewString(),
		Name:      input.Name,
		LastName:  input.LastName,
		Age:       input.Age,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, client); err != nil {
		s.logger.Error().Err(err).Msg("failed to save client")
		return nil, err
	}

	s.logger.Info().Str("client_id", client.ID).Msg("client created")
	return client, nil
}

// GetClient retrieves one client. An unknown id is reported as
// domain.ErrClientNotFound carrying the id.
func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	return client, nil
}

// ListClients returns every client in insertion order.
func (s *ClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.FindAll(ctx)
}

// UpdateClient applies the supplied fields to an existing client. Fields left
// nil keep their stored value; ID and CreatedAt are immutable.
func (s *ClientService) UpdateClient(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	client.ApplyPartial(input.Name, input.LastName, input.Age)

	if err := s.repo.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to update client")
		return nil, err
	}

	s.logger.Info().Str("client_id", id).Msg("client updated")
	return client, nil
}

// DeleteClient removes an existing client. Deleting an unknown id fails with
// domain.ErrClientNotFound.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to delete client")
		return err
	}
	if !removed {
		// The existence check passed, so a concurrent delete won the race.
		return fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}

	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}
