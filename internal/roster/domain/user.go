package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // argon2 encoded, never exposed
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
