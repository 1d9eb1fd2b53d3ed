package credentials

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the password.
// The digest format is part of the storage contract: existing users tables
// hold these digests, so the algorithm cannot change without a migration.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest and compares it against the stored
// one in constant time.
func VerifyPassword(password, digest string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
