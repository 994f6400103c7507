package models

// Client represents a customer a user bills.
//
// A client belongs to exactly one user by convention: every client carries the
// UserID of its creator, and list operations filter on that field. The store
// itself holds all users' clients interleaved in a single collection, so the
// scoping is logical rather than physical.
type Client struct {
	// ID is the unique identifier for the client (UUID format).
	ID string `json:"id"`

	// UserID is the owning user. It is a filter key, not an enforced
	// foreign key.
	UserID string `json:"userId"`

	// Name is the client's display name.
	Name string `json:"name"`

	// Email is the client's billing email address.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Address is an optional postal address.
	Address string `json:"address,omitempty"`

	// CreatedAt is the RFC 3339 creation time, assigned once at create
	// and immutable afterwards.
	CreatedAt string `json:"createdAt"`
}

// ClientPatch carries the fields of a partial client update. Nil fields keep
// their prior values (shallow merge). ID, UserID and CreatedAt cannot be
// patched.
type ClientPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
