package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// Passwords are condensed through SHA-256 before bcrypt so inputs
// longer than bcrypt's 72-byte limit are handled safely. The digest is
// base64-encoded to keep the bcrypt input free of NUL bytes. The bcrypt
// scheme identifier and cost are embedded in the stored string.
func prehash(password string) []byte {
	digest := sha256.Sum256([]byte(password))
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(digest)))
	base64.StdEncoding.Encode(encoded, digest[:])
	return encoded
}

// HashPassword hashes a plaintext password with the configured cost.
// Each call salts independently, so repeated hashes of the same
// plaintext differ.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored hash. A
// malformed, empty, or wrong-scheme stored value yields false rather
// than an error, so callers cannot leak hash state through failures.
func VerifyPassword(plain, stored string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), prehash(plain)) == nil
}
