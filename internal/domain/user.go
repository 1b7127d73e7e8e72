package domain

import "time"

// User is the account record exercised by the authentication flow.
// A user without a password hash can never authenticate by password.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified *time.Time
	Image         string
	PasswordHash  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
