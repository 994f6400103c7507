// Package janitor runs the TTL check on a schedule instead of waiting for
// the next collection access. Expired collections are purged at most one
// sweep interval after the window closes; read behavior is unchanged, since
// an access-time check would have purged them anyway.
package janitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/invoicepad/invoicepad/internal/repository"
)

// Janitor periodically invokes the TTL guard.
type Janitor struct {
	c     *cron.Cron
	guard *repository.Guard
}

// New creates a janitor sweeping the guard every interval.
func New(guard *repository.Guard, interval time.Duration) (*Janitor, error) {
	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		reset, err := guard.CheckAndReset(context.Background())
		if err != nil {
			slog.Error("Sweep failed", "error", err)
			return
		}
		if reset {
			slog.Info("Sweep purged expired collections")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule sweep: %w", err)
	}
	return &Janitor{c: c, guard: guard}, nil
}

// Start begins sweeping in the background.
func (j *Janitor) Start() {
	j.c.Start()
	slog.Info("Janitor started")
}

// Stop halts sweeping and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	ctx := j.c.Stop()
	<-ctx.Done()
	slog.Info("Janitor stopped")
}
