package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/acest-fitness/gym-service/internal/domain"
)

// ErrInvalidCredentials is returned for any username/password pair that is not accepted.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks a username/password pair and resolves the identity.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (domain.Identity, error)
}

// StaticVerifier accepts exactly one configured account. Only the bcrypt hash
// of the password is retained.
type StaticVerifier struct {
	username     string
	passwordHash string
}

// NewStaticVerifier hashes the password once so later checks never see the plaintext.
func NewStaticVerifier(username, password string, bcryptCost int) (*StaticVerifier, error) {
	if username == "" {
		return nil, errors.New("static verifier requires a username")
	}
	hash, err := HashPassword(password, bcryptCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{username: username, passwordHash: hash}, nil
}

// Verify matches username and password exactly, case-sensitive.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) (domain.Identity, error) {
	if username == "" || password == "" {
		return domain.Identity{}, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	// always hash so response time does not reveal whether the username matched
	passErr := ComparePassword(v.passwordHash, password)
	if !userOK || passErr != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}
	return domain.Identity{Username: v.username}, nil
}
