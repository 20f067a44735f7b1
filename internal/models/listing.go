package models

import "time"

// Condition values accepted by the backend for a listing.
const (
	ConditionNew  = "new"
	ConditionGood = "good"
	ConditionFair = "fair"
	ConditionPoor = "poor"
)

// Listing is a book offered for sale. The wire key for the title is
// "name"; ids and ownership are assigned by the server.
type Listing struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Author      string    `json:"author"`
	Category    string    `json:"category,omitempty"`
	Condition   string    `json:"condition,omitempty"`
	Price       Price     `json:"price"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Owner       *User     `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ListingDraft carries the client-editable fields of a listing for
// create and full-replace update calls. Price stays a string here: it is
// what the user typed, validated before submit and passed through to the
// decimal field on the server.
type ListingDraft struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Category    string `json:"category,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
