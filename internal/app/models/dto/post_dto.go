package dto

import "time"

// CreatePostRequest is the payload for sharing a feed post.
type CreatePostRequest struct {
	Content string `json:"content" binding:"required" example:"Looking for a study group for distributed systems"`
}

// PostResponse is the feed view of a post, joined with its author handle.
type PostResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostListResponse is a paginated feed page.
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination PaginationInfo `json:"pagination"`
}
