package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password with bcrypt at the default cost.
// The result embeds its own random salt, so equal passwords produce different
// hashes.
//
// Parameters:
//
//	password - plain-text password to hash
//
// Returns:
//
//	string - the bcrypt hash suitable for storage
//	error  - non-nil if hashing fails (e.g. the password exceeds 72 bytes)
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a plain-text password against a stored bcrypt hash.
//
// Returns true only when the password matches the hash. Any bcrypt error
// (malformed hash, mismatch) reports false; callers never need to distinguish
// the two cases.
func CheckPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
