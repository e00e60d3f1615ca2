package dto

import "time"

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required" example:"Campus ride sharing app"`
	Description string `json:"description"`
}

// ProjectResponse is the listing view of a project.
type ProjectResponse struct {
	ID          int64     `json:"id"`
	Owner       string    `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MemberCount int       `json:"memberCount"`
	IsMember    bool      `json:"isMember"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectListResponse is a paginated project listing.
type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination PaginationInfo    `json:"pagination"`
}

// ProjectMemberResponse is one entry in a project's member list.
type ProjectMemberResponse struct {
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`
}
