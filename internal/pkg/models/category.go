package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined transaction category. Predefined categories are
// a fixed global list and never have a Category row.
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"-" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CategoryRequest is the payload for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryList is the full category surface for a user
type CategoryList struct {
	Predefined []string   `json:"predefined"`
	Custom     []Category `json:"custom"`
}
