package dto

import "time"

// CreateHackathonRequest is the payload for creating a hackathon.
// Dates use the YYYY-MM-DD form.
type CreateHackathonRequest struct {
	Title       string `json:"title" binding:"required" example:"Winter Hack 2026"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required" example:"2026-01-10"`
	EndDate     string `json:"endDate" binding:"required" example:"2026-01-12"`
}

// HackathonResponse is the listing view of a hackathon.
type HackathonResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartDate        string    `json:"startDate" example:"2026-01-10"`
	EndDate          string    `json:"endDate" example:"2026-01-12"`
	ParticipantCount int       `json:"participantCount"`
	IsParticipant    bool      `json:"isParticipant"`
	CreatedAt        time.Time `json:"createdAt"`
}

// HackathonListResponse is a paginated hackathon listing.
type HackathonListResponse struct {
	Hackathons []HackathonResponse `json:"hackathons"`
	Pagination PaginationInfo      `json:"pagination"`
}
