package models

import "time"

// Category groups blogs under a single owning user. Ownership is fixed at
// creation and never transferred.
type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
