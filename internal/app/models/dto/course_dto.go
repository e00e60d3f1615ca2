package dto

import "time"

// CreateCourseRequest is the payload for sharing a course.
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required" example:"Intro to Databases"`
	Description string `json:"description" example:"Relational modelling, SQL, transactions"`
}

// CourseResponse is the listing view of a course.
type CourseResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Enrolled    bool      `json:"enrolled"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CourseListResponse is a paginated course listing.
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}
