package models

import "time"

// ForumQuestion represents a Q&A forum entry. Answer stays NULL until
// someone answers; an empty string never counts as an answer.
type ForumQuestion struct {
	ID         int64      `json:"id" db:"id"`
	UserID     int64      `json:"userId" db:"user_id"`
	Question   string     `json:"question" db:"question"`
	Answer     *string    `json:"answer,omitempty" db:"answer"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty" db:"answered_at"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

// Answered reports whether the question carries a non-empty answer.
func (q *ForumQuestion) Answered() bool {
	return q.Answer != nil && *q.Answer != ""
}
