// Package service implements the domain operations consumed by UI
// collaborators: session/auth state, Client CRUD and Invoice CRUD.
//
// Every operation sleeps a fixed simulated latency before touching the
// substrate, standing in for the network round-trip a real backend would
// cost. Once invoked, an operation runs to completion; there is no
// cancellation mid-call.
//
// The layers assume a single logical caller. Two concurrent callers can
// both read the same collection snapshot and the second write then
// overwrites the first's effect. This lost-update window is a known,
// accepted limitation of the source system, left open here so downstream
// behavior stays identical.
package service

import (
	"errors"
	"time"

	"github.com/invoicepad/invoicepad/internal/auth"
	"github.com/invoicepad/invoicepad/internal/models"
	"github.com/invoicepad/invoicepad/internal/repository"
	"github.com/invoicepad/invoicepad/internal/storage"
)

// DefaultLatency is the simulated per-call latency of the reference
// behavior.
const DefaultLatency = 500 * time.Millisecond

var (
	// ErrInvalidCredentials is returned by Login for any pair other than
	// the demo credentials.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when an update target does not exist.
	// Deletes are tolerant and never return it.
	ErrNotFound = errors.New("not found")
)

// Options configures a Service.
type Options struct {
	// TTL is the rolling inactivity window for the Client and Invoice
	// collections. Non-positive falls back to repository.DefaultTTL.
	TTL time.Duration

	// Latency is the uniform simulated delay per operation. Zero disables
	// the delay (tests).
	Latency time.Duration

	// DemoEmail and DemoPassword are the single accepted login pair.
	// Empty values fall back to the stock demo credentials.
	DemoEmail    string
	DemoPassword string
}

// Service bundles the three operation groups over one shared substrate and
// one TTL guard.
type Service struct {
	Auth     *AuthService
	Clients  *ClientService
	Invoices *InvoiceService

	guard *repository.Guard
}

// New wires a Service over the given substrate.
func New(store storage.Store, tokens *auth.TokenManager, opts Options) *Service {
	guard := repository.NewGuard(store, opts.TTL)

	email := opts.DemoEmail
	if email == "" {
		email = demoEmail
	}
	password := opts.DemoPassword
	if password == "" {
		password = demoPassword
	}

	return &Service{
		Auth: &AuthService{
			store:        store,
			tokens:       tokens,
			latency:      opts.Latency,
			demoEmail:    email,
			demoPassword: password,
		},
		Clients: &ClientService{
			col:     repository.NewCollection[models.Client](guard, storage.KeyClients),
			latency: opts.Latency,
		},
		Invoices: &InvoiceService{
			col:     repository.NewCollection[models.Invoice](guard, storage.KeyInvoices),
			latency: opts.Latency,
		},
		guard: guard,
	}
}

// Guard exposes the TTL guard, e.g. for a background janitor.
func (s *Service) Guard() *repository.Guard {
	return s.guard
}

// simulateLatency blocks for the configured per-call delay. The delay is
// uniform per call, not a function of payload size.
func simulateLatency(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
