package domain

import "time"

// The records below are persisted for the account-linking schema shared with
// the frontend stack. Nothing in the authentication flow reads or writes
// them; they exist so the database file stays compatible.

// Account links a user to an external OAuth provider.
type Account struct {
	UserID            string
	Type              string
	Provider          string
	ProviderAccountID string
	RefreshToken      string
	AccessToken       string
	ExpiresAt         *time.Time
	TokenType         string
	Scope             string
	IDToken           string
	SessionState      string
}

// Session is a server-side session record.
type Session struct {
	SessionToken string
	UserID       string
	Expires      time.Time
}

// VerificationToken is an email-verification token record.
type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}

// Subscription mirrors the billing provider's subscription state.
type Subscription struct {
	ID                 string
	UserID             string
	LemonSqueezyID     string
	OrderID            string
	Name               string
	Email              string
	Status             string
	StatusFormatted    string
	RenewsAt           *time.Time
	EndsAt             *time.Time
	TrialEndsAt        *time.Time
	Price              string
	IsUsageBased       bool
	IsPaused           bool
	SubscriptionItemID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
