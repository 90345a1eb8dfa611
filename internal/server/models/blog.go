package models

import "time"

// Blog belongs to exactly one user and one category, and the category must
// belong to the same user.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      string    `json:"user"`
	CategoryID  string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
