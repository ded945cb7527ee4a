package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the salt rounds the legacy user records were hashed
// with, so hashes stay interchangeable.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. Passwords longer
// than 72 bytes are rejected by bcrypt itself.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
