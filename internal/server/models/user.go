// Package models defines the row types persisted by the server.
package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash (the salt
// and cost are embedded in it) and must never be logged or returned to callers.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserSummary is the shape returned after register/login: identity only,
// never the hash.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
