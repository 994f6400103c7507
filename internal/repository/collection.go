package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/invoicepad/invoicepad/pkg/metrics"
)

// Collection provides typed get/put primitives over one named collection in
// the substrate, always routed through the TTL guard. Callers pass the
// complete sequence on every write; merge logic belongs to the service layer.
type Collection[T any] struct {
	guard *Guard
	key   string
}

// NewCollection binds a typed collection to its substrate key.
func NewCollection[T any](guard *Guard, key string) *Collection[T] {
	return &Collection[T]{guard: guard, key: key}
}

// Read returns the stored sequence. The TTL guard runs first: if it just
// purged, the result is empty. A substrate read failure degrades to an empty
// sequence rather than an error, matching the source behavior of a missing
// browser store.
func (c *Collection[T]) Read(ctx context.Context) ([]T, error) {
	metrics.CollectionReads.WithLabelValues(c.key).Inc()

	reset, err := c.guard.CheckAndReset(ctx)
	if err != nil {
		slog.Warn("Substrate unavailable, reading empty collection", "collection", c.key, "error", err)
		return nil, nil
	}
	if reset {
		return nil, nil
	}

	raw, err := c.guard.Store().Get(ctx, c.key)
	if err != nil {
		slog.Warn("Substrate unavailable, reading empty collection", "collection", c.key, "error", err)
		return nil, nil
	}
	if raw == nil {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	return items, nil
}

// Write persists the full replacement sequence, then refreshes the activity
// timestamp to extend the TTL window. Substrate write failures are hard
// errors.
func (c *Collection[T]) Write(ctx context.Context, items []T) error {
	metrics.CollectionWrites.WithLabelValues(c.key).Inc()

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.guard.Store().Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.key, err)
	}
	return c.guard.Touch(ctx)
}
