// Package models contains server-side persistence models.
package models

// User is an account record. PasswordHash never leaves the repository layer:
// services compare against it and hand out only ID/Email/Name.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}
