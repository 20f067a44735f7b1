package models

import "time"

// CartItem is one row of the current user's cart. The server merges
// quantities when the same book is added twice, so the client treats the
// cart as refetch-only and never increments locally.
type CartItem struct {
	ID       int64     `json:"id"`
	Book     Listing   `json:"book"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at,omitempty"`
}

// Order is the response to a buy-now request. Recipients lists the
// seller contacts the backend notified; it may be empty.
type Order struct {
	Detail     string   `json:"detail,omitempty"`
	Recipients []string `json:"recipients,omitempty"`
}
