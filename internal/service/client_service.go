package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepad/invoicepad/internal/models"
	"github.com/invoicepad/invoicepad/internal/repository"
)

// ClientService implements CRUD over the clients collection.
type ClientService struct {
	col     *repository.Collection[models.Client]
	latency time.Duration
}

// List returns all clients owned by userID, in insertion order. The
// collection holds every user's clients interleaved; scoping is a filter,
// not a partition.
func (s *ClientService) List(ctx context.Context, userID string) ([]models.Client, error) {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return nil, err
	}

	var owned []models.Client
	for _, c := range all {
		if c.UserID == userID {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

// Create assigns a fresh ID and creation timestamp to client, appends it to
// the collection and persists. The passed ID and CreatedAt are ignored.
func (s *ClientService) Create(ctx context.Context, client models.Client) (*models.Client, error) {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return nil, err
	}

	client.ID = uuid.New().String()
	client.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.col.Write(ctx, append(all, client)); err != nil {
		return nil, err
	}

	slog.Info("Client created", "client_id", client.ID, "user_id", client.UserID)
	return &client, nil
}

// Update shallow-merges patch over the client with the given ID: nil patch
// fields retain their prior values. Returns ErrNotFound when no client
// matches.
func (s *ClientService) Update(ctx context.Context, id string, patch models.ClientPatch) (*models.Client, error) {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range all {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("client %s: %w", id, ErrNotFound)
	}

	merged := all[idx]
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	all[idx] = merged

	if err := s.col.Write(ctx, all); err != nil {
		return nil, err
	}

	slog.Info("Client updated", "client_id", id)
	return &merged, nil
}

// Delete removes the client with the given ID. Deleting an absent ID is a
// no-op, not an error; the collection is rewritten either way, which also
// extends the TTL window.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, c := range all {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if err := s.col.Write(ctx, kept); err != nil {
		return err
	}

	slog.Info("Client deleted", "client_id", id)
	return nil
}
