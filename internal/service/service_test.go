package service

import (
	"testing"
	"time"

	"github.com/invoicepad/invoicepad/internal/auth"
	"github.com/invoicepad/invoicepad/internal/storage/memory"
)

// newTestService wires a Service over a fresh in-memory substrate with no
// simulated latency and a controllable clock.
func newTestService(t *testing.T) (*Service, func(time.Duration)) {
	t.Helper()

	store := memory.New()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := New(store, tokens, Options{})

	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.Guard().SetNow(func() time.Time { return current })
	advance := func(d time.Duration) { current = current.Add(d) }

	return svc, advance
}

func strPtr(s string) *string { return &s }
