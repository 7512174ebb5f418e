package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTripUsesCurrentSecret(t *testing.T) {
	// The secret is read when tokens are created and validated, not at
	// package init, so setting it here (as godotenv does at startup) works.
	t.Setenv("JWT_SECRET", "round-trip-secret")

	accountID := uuid.New()
	token, err := CreateToken(accountID, "user")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
