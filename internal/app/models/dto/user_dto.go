package dto

import "time"

// ProfileResponse is the public view of a user profile.
type ProfileResponse struct {
	ID        int64     `json:"id" example:"1"`
	Username  string    `json:"username" example:"maya_r"`
	College   string    `json:"college" example:"IIT Delhi"`
	Skills    []string  `json:"skills" example:"go,sql"`
	Bio       string    `json:"bio"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest carries editable profile fields.
type UpdateProfileRequest struct {
	College string   `json:"college" binding:"required"`
	Skills  []string `json:"skills"`
	Bio     string   `json:"bio"`
}
