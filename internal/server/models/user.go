package models

import "time"

// User is an account that owns categories and blogs. PasswordHash is the
// bcrypt digest of the password and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
