package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keySize    = 32
	iterations = 100000
)

// HashPassword derives a PBKDF2-SHA256 key from password with a fresh random
// salt. Both values are returned base64 encoded.
func HashPassword(password string) (hash, salt string, err error) {
	saltBytes := make([]byte, saltSize)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = base64.StdEncoding.EncodeToString(saltBytes)
	return base64.StdEncoding.EncodeToString(deriveKey(password, saltBytes)), salt, nil
}

// VerifyPassword recomputes the key with the stored salt and compares it in
// constant time. Malformed stored values never verify.
func VerifyPassword(password, hash, salt string) bool {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}
	// ConstantTimeCompare returns early on a length mismatch.
	return subtle.ConstantTimeCompare(deriveKey(password, saltBytes), expected) == 1
}

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
}
