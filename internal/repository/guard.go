// Package repository layers collection semantics over the raw key/value
// substrate: a TTL guard that bounds the lifetime of the persisted
// collections, and typed read/write primitives gated by that guard.
//
// The layers assume a single logical caller. Two callers racing a
// read-modify-write can lose an update; see the service docs.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/invoicepad/invoicepad/internal/storage"
	"github.com/invoicepad/invoicepad/pkg/metrics"
)

// DefaultTTL is the rolling inactivity window after which the Client and
// Invoice collections are purged. The guard is a demo-mode substitute for a
// server-side cleanup process, so the window is short.
const DefaultTTL = 10 * time.Minute

// Guard bounds the lifetime of the persisted collections to a rolling
// inactivity window. A single last-activity timestamp lives alongside the
// data under storage.KeyTimestamp; any write refreshes it (sliding expiry).
//
// The session record is deliberately not guarded: only the Client and
// Invoice collections expire.
type Guard struct {
	store storage.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewGuard creates a guard over store with the given TTL. A non-positive ttl
// falls back to DefaultTTL.
func NewGuard(store storage.Store, ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Guard{store: store, ttl: ttl, now: time.Now}
}

// SetNow overrides the guard's clock. Exposed for tests.
func (g *Guard) SetNow(now func() time.Time) {
	g.now = now
}

// Store returns the underlying substrate, for callers that bypass the guard
// (the session record).
func (g *Guard) Store() storage.Store {
	return g.store
}

// CheckAndReset purges the guarded collections if the activity timestamp is
// absent, unreadable or older than the TTL, and starts a fresh window. It
// reports whether a reset occurred. Called before every collection read.
func (g *Guard) CheckAndReset(ctx context.Context) (bool, error) {
	now := g.now()

	raw, err := g.store.Get(ctx, storage.KeyTimestamp)
	if err != nil {
		return false, fmt.Errorf("failed to read activity timestamp: %w", err)
	}

	if raw != nil {
		millis, err := strconv.ParseInt(string(raw), 10, 64)
		if err == nil && now.Sub(time.UnixMilli(millis)) <= g.ttl {
			return false, nil // window still open
		}
		if err != nil {
			slog.Warn("Unreadable activity timestamp, resetting", "value", string(raw))
		}
	}

	for _, key := range []string{storage.KeyClients, storage.KeyInvoices} {
		if err := g.store.Delete(ctx, key); err != nil {
			return false, fmt.Errorf("failed to purge %s: %w", key, err)
		}
	}
	if err := g.touch(ctx, now); err != nil {
		return false, err
	}

	metrics.StoreResets.Inc()
	slog.Info("Expired collections purged", "ttl", g.ttl)
	return true, nil
}

// Touch refreshes the activity timestamp to now, extending the window.
// Every collection write calls this after persisting the payload. The two
// writes are separate, not a transaction.
func (g *Guard) Touch(ctx context.Context) error {
	return g.touch(ctx, g.now())
}

func (g *Guard) touch(ctx context.Context, now time.Time) error {
	value := strconv.FormatInt(now.UnixMilli(), 10)
	if err := g.store.Set(ctx, storage.KeyTimestamp, []byte(value)); err != nil {
		return fmt.Errorf("failed to write activity timestamp: %w", err)
	}
	return nil
}
