package models

import "time"

// Post represents a feed post. Posts are immutable once created and
// listed newest-first.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
