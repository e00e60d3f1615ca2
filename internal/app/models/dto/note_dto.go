package dto

import "time"

// CreateNoteRequest is the multipart form for uploading notes.
// The file itself arrives as the "file" form field.
type CreateNoteRequest struct {
	Title string `form:"title" binding:"required" example:"OS scheduling summary"`
}

// RateNoteRequest is the payload for rating a note.
type RateNoteRequest struct {
	Rating int `json:"rating" binding:"required" example:"4"`
}

// NoteResponse is the listing view of a note, including its live
// rating aggregate. AverageRating is nil when nobody has rated yet.
type NoteResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Title         string    `json:"title"`
	FileURL       string    `json:"fileUrl"`
	AverageRating *float64  `json:"averageRating,omitempty"`
	RatingCount   int       `json:"ratingCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NoteListResponse is a paginated note listing.
type NoteListResponse struct {
	Notes      []NoteResponse `json:"notes"`
	Pagination PaginationInfo `json:"pagination"`
}
