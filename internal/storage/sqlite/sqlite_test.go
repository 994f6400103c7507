package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "invoicepad-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "data", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("missing key is nil without error", func(t *testing.T) {
		got, err := store.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get = %v, want nil", got)
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		if err := store.Set(ctx, "clients", []byte(`[{"id":"1"}]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get(ctx, "clients")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[{"id":"1"}]` {
			t.Errorf("Get = %q, want stored JSON", got)
		}
	})

	t.Run("set upserts over prior value", func(t *testing.T) {
		if err := store.Set(ctx, "clients", []byte(`[]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, _ := store.Get(ctx, "clients")
		if string(got) != `[]` {
			t.Errorf("Get = %q, want %q", got, `[]`)
		}
	})

	t.Run("delete is tolerant", func(t *testing.T) {
		if err := store.Delete(ctx, "clients"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := store.Delete(ctx, "clients"); err != nil {
			t.Fatalf("Delete of absent key failed: %v", err)
		}
	})

	t.Run("values survive reopen", func(t *testing.T) {
		if err := store.Set(ctx, "session", []byte(`{"id":"user-1"}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to reopen store: %v", err)
		}
		defer reopened.Close()

		got, err := reopened.Get(ctx, "session")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `{"id":"user-1"}` {
			t.Errorf("Get after reopen = %q, want persisted session", got)
		}
		store = reopened
	})
}
