package utils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureTokenIsHexAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		token, err := GenerateSecureToken(32)
		require.NoError(t, err)

		// 32 random bytes hex encode to 64 chars.
		assert.Len(t, token, 64)
		_, err = hex.DecodeString(token)
		require.NoError(t, err)

		assert.False(t, seen[token], "token repeated")
		seen[token] = true
	}

	_, err := GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestGenerateReferralCodeFormat(t *testing.T) {
	code := GenerateReferralCode()
	assert.True(t, strings.HasPrefix(code, "REF"))
	assert.Len(t, code, 11)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "hunter22"))
	assert.Error(t, ComparePasswords(hash, "hunter23"))
}
