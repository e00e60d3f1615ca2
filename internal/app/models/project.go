package models

import "time"

// Project represents a collaborative project. Membership lives in the
// project_members join table, one row per (project, user).
type Project struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ProjectMember records a user's membership in a project.
type ProjectMember struct {
	ID        int64     `json:"id" db:"id"`
	ProjectID int64     `json:"projectId" db:"project_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	JoinedAt  time.Time `json:"joinedAt" db:"joined_at"`
}
