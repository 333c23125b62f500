package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasherDeterministicWithSalt(t *testing.T) {
	h := NewPasswordHasher()

	salt, hash, err := h.Encrypt("Password1!")
	require.NoError(t, err)
	assert.NotEmpty(t, salt)

	assert.Equal(t, hash, h.EncryptWithSalt("Password1!", salt))
	assert.NotEqual(t, hash, h.EncryptWithSalt("Password2!", salt))
	assert.True(t, h.Matches("Password1!", salt, hash))
	assert.False(t, h.Matches("password1!", salt, hash))

	salt2, hash2, err := h.Encrypt("Password1!")
	require.NoError(t, err)
	assert.NotEqual(t, salt, salt2)
	assert.NotEqual(t, hash, hash2, "fresh salt gives a different hash")
}

func TestTokenIssuerUniqueTokens(t *testing.T) {
	ti := NewTokenIssuer("secret", "test")
	now := time.Now()

	a, err := ti.Issue("cust-1", now, now.Add(8*time.Hour))
	require.NoError(t, err)
	b, err := ti.Issue("cust-1", now, now.Add(8*time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	claims, err := ti.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", claims.CustomerUUID)
	assert.Equal(t, "test", claims.Issuer)

	_, err = NewTokenIssuer("other", "test").Parse(a)
	assert.Error(t, err)
}

func TestTokenIssuerParseIgnoresExpiry(t *testing.T) {
	ti := NewTokenIssuer("secret", "test")
	past := time.Now().Add(-10 * time.Hour)

	tok, err := ti.Issue("cust-1", past, past.Add(8*time.Hour))
	require.NoError(t, err)

	_, err = ti.Parse(tok)
	assert.NoError(t, err)
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Password1!", true},
		{"PASSWORD1#", true},
		{"Password1", false},
		{"Pass1!", false},
		{"password1!", false},
		{"Password!!", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestIsValidContactNumber(t *testing.T) {
	assert.True(t, IsValidContactNumber("9876543210"))
	assert.False(t, IsValidContactNumber("987654321"))
	assert.False(t, IsValidContactNumber("98765432101"))
	assert.False(t, IsValidContactNumber("98765x3210"))
	assert.False(t, IsValidContactNumber("+919876543"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a.b@example.com"))
	assert.False(t, IsValidEmail("a.b@"))
	assert.False(t, IsValidEmail("plainaddress"))
	assert.False(t, IsValidEmail(""))
}

func TestMiscValidators(t *testing.T) {
	assert.True(t, IsValidPincode("560038"))
	assert.False(t, IsValidPincode("5600"))
	assert.False(t, IsValidPincode("56003a"))

	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(5.5))

	assert.True(t, IsBlank("a", " "))
	assert.False(t, IsBlank("a", "b"))
}
