package security

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from a plaintext password. Each
// call salts independently, so hashing the same password twice yields two
// different strings. Empty input is accepted; rejecting it is the caller's
// boundary validation, not a hashing concern.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the stored hash.
// bcrypt's comparison does not short-circuit on a partial match, and any
// malformed stored hash reads as a plain mismatch.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
