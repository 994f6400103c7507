package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/invoicepad/invoicepad/internal/models"
	"github.com/invoicepad/invoicepad/internal/repository"
)

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns fresh ID and timestamp", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, err := svc.Clients.Create(ctx, models.Client{
			UserID: "user-1",
			Name:   "Acme Corp",
			Email:  "billing@acme.example",
			Phone:  "+1 555 0100",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID == "" {
			t.Error("Expected client ID to be generated")
		}
		if created.CreatedAt == "" {
			t.Error("Expected CreatedAt to be set")
		}
		if _, err := time.Parse(time.RFC3339, created.CreatedAt); err != nil {
			t.Errorf("CreatedAt %q is not RFC 3339: %v", created.CreatedAt, err)
		}

		// Round-trip: list for the same owner includes the record with
		// all supplied fields intact.
		listed, err := svc.Clients.List(ctx, "user-1")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(listed) != 1 {
			t.Fatalf("List = %d clients, want 1", len(listed))
		}
		if listed[0] != *created {
			t.Errorf("List returned %+v, want %+v", listed[0], *created)
		}
	})

	t.Run("create assigns previously unseen IDs", func(t *testing.T) {
		svc, _ := newTestService(t)

		seen := make(map[string]bool)
		for i := 0; i < 5; i++ {
			c, err := svc.Clients.Create(ctx, models.Client{UserID: "user-1", Name: "C"})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if seen[c.ID] {
				t.Fatalf("ID %s repeated", c.ID)
			}
			seen[c.ID] = true
		}
	})

	t.Run("list scopes by owner in insertion order", func(t *testing.T) {
		svc, _ := newTestService(t)

		first, _ := svc.Clients.Create(ctx, models.Client{UserID: "user-1", Name: "Mine A"})
		if _, err := svc.Clients.Create(ctx, models.Client{UserID: "user-2", Name: "Theirs"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		second, _ := svc.Clients.Create(ctx, models.Client{UserID: "user-1", Name: "Mine B"})

		listed, err := svc.Clients.List(ctx, "user-1")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(listed) != 2 {
			t.Fatalf("List = %d clients, want 2", len(listed))
		}
		if listed[0].ID != first.ID || listed[1].ID != second.ID {
			t.Errorf("List order = [%s %s], want [%s %s]",
				listed[0].ID, listed[1].ID, first.ID, second.ID)
		}

		empty, err := svc.Clients.List(ctx, "user-3")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(empty) != 0 {
			t.Errorf("List for unknown owner = %v, want empty", empty)
		}
	})

	t.Run("update merges, not replaces", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, _ := svc.Clients.Create(ctx, models.Client{
			UserID: "user-1",
			Name:   "Old Name",
			Email:  "old@acme.example",
			Phone:  "+1 555 0100",
		})

		updated, err := svc.Clients.Update(ctx, created.ID, models.ClientPatch{
			Name: strPtr("New Name"),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Name != "New Name" {
			t.Errorf("Name = %q, want %q", updated.Name, "New Name")
		}
		if updated.Email != "old@acme.example" || updated.Phone != "+1 555 0100" {
			t.Errorf("Untouched fields changed: %+v", updated)
		}
		if updated.CreatedAt != created.CreatedAt {
			t.Errorf("CreatedAt changed across update")
		}
	})

	t.Run("update of missing ID is NotFound", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Clients.Update(ctx, "nope", models.ClientPatch{Name: strPtr("X")})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes the record", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, _ := svc.Clients.Create(ctx, models.Client{UserID: "user-1", Name: "Gone"})
		if err := svc.Clients.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		listed, _ := svc.Clients.List(ctx, "user-1")
		if len(listed) != 0 {
			t.Errorf("List after delete = %v, want empty", listed)
		}
	})

	t.Run("delete of missing ID is a tolerant no-op", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, _ := svc.Clients.Create(ctx, models.Client{UserID: "user-1", Name: "Stays"})
		if err := svc.Clients.Delete(ctx, "nope"); err != nil {
			t.Fatalf("Delete of absent ID failed: %v", err)
		}

		listed, _ := svc.Clients.List(ctx, "user-1")
		if len(listed) != 1 || listed[0].ID != created.ID {
			t.Errorf("Collection changed by tolerant delete: %v", listed)
		}
	})

	t.Run("clients are gone after the TTL lapses", func(t *testing.T) {
		svc, advance := newTestService(t)

		if _, err := svc.Clients.Create(ctx, models.Client{UserID: "user-1", Name: "Ephemeral"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		advance(repository.DefaultTTL + time.Minute)
		listed, err := svc.Clients.List(ctx, "user-1")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(listed) != 0 {
			t.Errorf("List after TTL = %v, want empty", listed)
		}
	})
}
