package model

// Inquiry represents one normalized contact-form submission. It is
// transient: its only durable traces are the notification email and the
// optional ledger row.
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Phone   string `json:"phone,omitempty"`

	// Request metadata, best-effort.
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// FieldError describes a single validation failure for one input field.
type FieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// LedgerHeader is the canonical first row of the inquiry ledger. The
// ledger writer compares the sheet's first row against it positionally
// and case-insensitively before every append.
var LedgerHeader = []string{"Timestamp", "Name", "Email", "Phone", "Message", "IP", "User Agent"}
