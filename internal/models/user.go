package models

// User is an account as the backend serializes it. Identity is resolved
// server-side from the session cookie; the client never assigns ids.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	BookCount int    `json:"book_count,omitempty"`
	IsStaff   bool   `json:"is_staff,omitempty"`
}
