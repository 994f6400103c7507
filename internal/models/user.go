package models

// User represents the account behind the current session.
//
// Users are not part of the TTL-bound collections: the session record is the
// only place a User is persisted, and it survives until an explicit logout or
// the substrate itself is cleared.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Email is the address the user signed in with.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// BusinessName is the optional trading name shown on invoices.
	BusinessName string `json:"businessName,omitempty"`

	// BusinessAddress is the optional postal address shown on invoices.
	BusinessAddress string `json:"businessAddress,omitempty"`

	// LogoURL is the optional logo rendered on invoice documents.
	LogoURL string `json:"logoUrl,omitempty"`

	// ThemeColor is the optional accent color for rendered documents.
	ThemeColor string `json:"themeColor,omitempty"`
}
