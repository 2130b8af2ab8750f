package domain

import "time"

// User is a registered account. PasswordHash never leaves the storage
// and app layers.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
