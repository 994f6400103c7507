package models

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// Invoice represents a billable document issued by a user to a client.
type Invoice struct {
	// ID is the unique identifier for the invoice (UUID format).
	ID string `json:"id"`

	// UserID is the owning user, used to scope list operations.
	UserID string `json:"userId"`

	// ClientID is a soft reference to the billed Client. No existence
	// check or cascade applies.
	ClientID string `json:"clientId"`

	// InvoiceNumber is the user-facing document number (e.g. "INV-0042").
	InvoiceNumber string `json:"invoiceNumber"`

	// Date and DueDate are ISO date strings.
	Date    string `json:"date"`
	DueDate string `json:"dueDate"`

	// Items is the ordered sequence of line items.
	Items []InvoiceItem `json:"items"`

	// TotalAmount is a snapshot computed by the caller at save time from
	// Items and TaxRate. It is never recomputed on read: editing items
	// without a matching update leaves the stored total as-is.
	TotalAmount float64 `json:"totalAmount"`

	// Status is one of draft, sent, paid, overdue.
	Status InvoiceStatus `json:"status"`

	// Notes is optional free-form text printed on the document.
	Notes string `json:"notes,omitempty"`

	// TaxRate is an optional percentage. Zero means no tax.
	TaxRate float64 `json:"taxRate,omitempty"`
}

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	// ID is caller-assigned and used only for list-rendering identity.
	// The service does not check it for uniqueness.
	ID string `json:"id"`

	// Description is the text of the line item.
	Description string `json:"description"`

	// Quantity may be fractional (e.g. 1.5 hours).
	Quantity float64 `json:"quantity"`

	// Price is the unit price in currency units.
	Price float64 `json:"price"`
}

// InvoicePatch carries the fields of a partial invoice update. Nil fields
// keep their prior values (shallow merge). ID and UserID cannot be patched.
// Items replaces the whole sequence when set; TotalAmount is the caller's
// recomputed snapshot for the new items.
type InvoicePatch struct {
	ClientID      *string        `json:"clientId,omitempty"`
	InvoiceNumber *string        `json:"invoiceNumber,omitempty"`
	Date          *string        `json:"date,omitempty"`
	DueDate       *string        `json:"dueDate,omitempty"`
	Items         *[]InvoiceItem `json:"items,omitempty"`
	TotalAmount   *float64       `json:"totalAmount,omitempty"`
	Status        *InvoiceStatus `json:"status,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	TaxRate       *float64       `json:"taxRate,omitempty"`
}
