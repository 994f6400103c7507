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

// InvoiceService implements CRUD over the invoices collection.
//
// TotalAmount is a caller-supplied snapshot: the caller runs the calculator
// before Create or Update, and the service stores the result verbatim. Reads
// never recompute it.
type InvoiceService struct {
	col     *repository.Collection[models.Invoice]
	latency time.Duration
}

// List returns all invoices owned by userID, in insertion order.
func (s *InvoiceService) List(ctx context.Context, userID string) ([]models.Invoice, error) {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return nil, err
	}

	var owned []models.Invoice
	for _, inv := range all {
		if inv.UserID == userID {
			owned = append(owned, inv)
		}
	}
	return owned, nil
}

// Get returns the invoice with the given ID, or nil when no invoice
// matches. A missing invoice is not an error.
func (s *InvoiceService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return nil, err
	}

	for _, inv := range all {
		if inv.ID == id {
			return &inv, nil
		}
	}
	return nil, nil
}

// Create assigns a fresh ID to invoice, appends it to the collection and
// persists. Everything else, TotalAmount included, is stored as supplied.
func (s *InvoiceService) Create(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return nil, err
	}

	invoice.ID = uuid.New().String()

	if err := s.col.Write(ctx, append(all, invoice)); err != nil {
		return nil, err
	}

	slog.Info("Invoice created",
		"invoice_id", invoice.ID,
		"user_id", invoice.UserID,
		"number", invoice.InvoiceNumber,
		"total", invoice.TotalAmount,
	)
	return &invoice, nil
}

// Update shallow-merges patch over the invoice with the given ID. Returns
// ErrNotFound when no invoice matches.
func (s *InvoiceService) Update(ctx context.Context, id string, patch models.InvoicePatch) (*models.Invoice, error) {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, inv := range all {
		if inv.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}

	merged := all[idx]
	if patch.ClientID != nil {
		merged.ClientID = *patch.ClientID
	}
	if patch.InvoiceNumber != nil {
		merged.InvoiceNumber = *patch.InvoiceNumber
	}
	if patch.Date != nil {
		merged.Date = *patch.Date
	}
	if patch.DueDate != nil {
		merged.DueDate = *patch.DueDate
	}
	if patch.Items != nil {
		merged.Items = *patch.Items
	}
	if patch.TotalAmount != nil {
		merged.TotalAmount = *patch.TotalAmount
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	if patch.Notes != nil {
		merged.Notes = *patch.Notes
	}
	if patch.TaxRate != nil {
		merged.TaxRate = *patch.TaxRate
	}
	all[idx] = merged

	if err := s.col.Write(ctx, all); err != nil {
		return nil, err
	}

	slog.Info("Invoice updated", "invoice_id", id)
	return &merged, nil
}

// Delete removes the invoice with the given ID. Deleting an absent ID is a
// no-op, not an error.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	simulateLatency(s.latency)

	all, err := s.col.Read(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, inv := range all {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}

	if err := s.col.Write(ctx, kept); err != nil {
		return err
	}

	slog.Info("Invoice deleted", "invoice_id", id)
	return nil
}
