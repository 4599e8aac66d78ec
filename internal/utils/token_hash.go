package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the SHA256 hex digest of a token string. Used for both
// refresh tokens and API tokens; the raw token never touches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareTokenHash compares a raw token with a stored SHA256 hash.
func CompareTokenHash(token string, storedHash string) bool {
	return HashToken(token) == storedHash
}
