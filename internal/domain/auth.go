package domain

import "time"

// TokenTypeAccess marks tokens that grant access to protected routes.
const TokenTypeAccess = "access"

// Identity is the authenticated caller embedded in issued tokens.
type Identity struct {
	Username string
}

// Token represents issued authentication token metadata.
type Token struct {
	ID        string
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}
