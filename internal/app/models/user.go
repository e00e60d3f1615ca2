package models

import (
	"strings"
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"maya_r"` // Unique handle, the cross-reference key for scoring
	Password  string    `json:"-" db:"password"`                         // Hashed password (excluded from JSON)
	College   string    `json:"college" db:"college" example:"IIT Delhi"`
	Skills    string    `json:"-" db:"skills"` // Comma-delimited in storage, exposed as a list
	Bio       string    `json:"bio" db:"bio"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// SkillList splits the stored comma-delimited skills into a list,
// dropping empty entries.
func (u *User) SkillList() []string {
	if strings.TrimSpace(u.Skills) == "" {
		return []string{}
	}
	parts := strings.Split(u.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// JoinSkills builds the stored representation from a skill list.
func JoinSkills(skills []string) string {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ",")
}
