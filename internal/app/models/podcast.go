package models

import "time"

// Podcast represents an uploaded audio episode.
type Podcast struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Language  string    `json:"language" db:"language"`
	FileURL   string    `json:"fileUrl" db:"file_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
