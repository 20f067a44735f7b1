package models

import "time"

// Favorite is a user-scoped bookmark of a listing. The owning user is
// implicit (the current session); the server embeds the full listing.
type Favorite struct {
	ID        int64     `json:"id"`
	Book      Listing   `json:"book"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
