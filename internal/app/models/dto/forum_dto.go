package dto

import "time"

// AskQuestionRequest is the payload for posting a forum question.
type AskQuestionRequest struct {
	Question string `json:"question" binding:"required" example:"How do I prepare for the OS midterm?"`
}

// AnswerQuestionRequest is the payload for answering a question.
type AnswerQuestionRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// QuestionResponse is the forum view of a question.
type QuestionResponse struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Question   string     `json:"question"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// QuestionListResponse is a paginated forum page.
type QuestionListResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Pagination PaginationInfo     `json:"pagination"`
}
