package dto

import "time"

// CreatePodcastRequest is the multipart form for uploading a podcast.
// The audio file arrives as the "file" form field.
type CreatePodcastRequest struct {
	Title    string `form:"title" binding:"required" example:"Campus tech talk #3"`
	Language string `form:"language" binding:"required" example:"en"`
}

// PodcastResponse is the listing view of a podcast.
type PodcastResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// PodcastListResponse is a paginated podcast listing.
type PodcastListResponse struct {
	Podcasts   []PodcastResponse `json:"podcasts"`
	Pagination PaginationInfo    `json:"pagination"`
}
