package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifier(t *testing.T) {
	v, err := NewStaticVerifier("admin", "admin", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "admin", v.passwordHash)

	identity, err := v.Verify(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", identity.Username)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong pair", "wrong", "wrong"},
		{"wrong password", "admin", "nimda"},
		{"wrong username", "root", "admin"},
		{"username case", "Admin", "admin"},
		{"password case", "admin", "ADMIN"},
		{"empty username", "", "admin"},
		{"empty password", "admin", ""},
		{"trailing space", "admin ", "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestNewStaticVerifier_RequiresUsername(t *testing.T) {
	_, err := NewStaticVerifier("", "admin", bcrypt.MinCost)
	assert.Error(t, err)
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	hash, err := HashPassword("admin", 1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.NoError(t, ComparePassword(hash, "admin"))
}
