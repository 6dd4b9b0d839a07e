package domain

import "time"

// User is an account able to sign in and own bookings
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is what the session layer knows about the signed-in user
type Identity struct {
	UserID string
	Email  string
}
