package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 32
)

// PasswordHasher derives password hashes from an explicit per-customer salt.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Encrypt generates a fresh salt and returns it with the hash of password.
func (h *PasswordHasher) Encrypt(password string) (salt string, hash string, err error) {
	buf := make([]byte, saltLen)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	salt = base64.StdEncoding.EncodeToString(buf)
	return salt, h.EncryptWithSalt(password, salt), nil
}

// EncryptWithSalt is deterministic for the same password and salt.
func (h *PasswordHasher) EncryptWithSalt(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return strings.ToUpper(hex.EncodeToString(key))
}

func (h *PasswordHasher) Matches(password, salt, hash string) bool {
	computed := h.EncryptWithSalt(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
