package entity

import (
	"time"
)

// User is a registered account.
// PasswordHash holds a bcrypt hash; the plaintext is never stored.
// UpdatedAt is set at creation and nothing mutates a user afterwards.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
