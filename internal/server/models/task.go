package models

import "time"

// Task is a single to-do item owned by one account. A non-nil DeletedAt
// marks the row as soft-deleted; such rows are excluded from every
// user-facing read.
type Task struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	IsDone    bool       `json:"isDone"`
	OwnerID   int64      `json:"ownerId"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
