// Package models defines the persisted records shared across repositories
// and services.
package models

// User is created once at registration and is immutable thereafter.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
}
