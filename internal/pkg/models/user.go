package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account with its display preferences
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Currency     string    `json:"currency" db:"currency"`
	Language     string    `json:"language" db:"language"`
	DarkMode     bool      `json:"dark_mode" db:"dark_mode"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest is the payload for profile settings updates
type ProfileRequest struct {
	Username string `json:"username"`
	Currency string `json:"currency"`
	Language string `json:"language"`
	DarkMode bool   `json:"dark_mode"`
}

// PasswordChangeRequest is the payload for password changes
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse is returned after a successful login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
