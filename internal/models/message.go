package models

import "time"

// Message is a free-text note tied to a listing. Append-only from the
// client's perspective. The book field is a bare id on the wire; sender
// and recipient come back as embedded users.
type Message struct {
	ID        int64     `json:"id"`
	Sender    *User     `json:"sender,omitempty"`
	Recipient *User     `json:"recipient,omitempty"`
	Book      int64     `json:"book"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
