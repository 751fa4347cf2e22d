package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt hash; the
// plaintext password is never stored.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
