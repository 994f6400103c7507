// Package models defines the core domain models for Invoicepad.
//
// All models are JSON-encoded when persisted, using the same camelCase field
// names the browser client renders, so a substrate dump stays readable with
// ordinary JSON tooling.
//
// Ownership between models is by ID string, not by pointer: a Client carries
// the UserID of its creator, an Invoice carries both UserID and ClientID.
// ClientID is a soft reference. Deleting a Client does not cascade to its
// invoices, and no existence check is performed when an Invoice is saved.
package models
