package models

import "time"

// Hackathon represents a hackathon event with a time window.
type Hackathon struct {
	ID          int64     `json:"id" db:"id"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// HackathonParticipant records a user's participation in a hackathon.
type HackathonParticipant struct {
	ID          int64     `json:"id" db:"id"`
	HackathonID int64     `json:"hackathonId" db:"hackathon_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	JoinedAt    time.Time `json:"joinedAt" db:"joined_at"`
}
