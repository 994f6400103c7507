// Package calculator computes invoice totals. It is pure and stateless: the
// service layer stores the result as a snapshot at write time and never
// recomputes it on read.
package calculator

import "github.com/invoicepad/invoicepad/internal/models"

// Totals is the derived money breakdown for a set of line items.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Subtotal sums quantity times price over all items. An empty sequence is 0.
func Subtotal(items []models.InvoiceItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Quantity * item.Price
	}
	return sum
}

// TaxAmount applies a percentage tax rate to a subtotal. A zero rate (the
// absent-tax case) yields 0.
func TaxAmount(subtotal, taxRate float64) float64 {
	return subtotal * (taxRate / 100)
}

// Compute derives the full breakdown for items at the given percentage tax
// rate. Display rounding to two decimals is a presentation concern and is
// not applied here.
func Compute(items []models.InvoiceItem, taxRate float64) Totals {
	subtotal := Subtotal(items)
	tax := TaxAmount(subtotal, taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
