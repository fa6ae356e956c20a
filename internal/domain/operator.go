package domain

import "time"

// Operator is an authenticated panel user.
type Operator struct {
	ID           string
	Nome         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
