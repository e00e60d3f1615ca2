package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
)

// ForumService defines the interface for the Q&A forum
type ForumService interface {
	AskQuestion(ctx context.Context, userID int64, req *dto.AskQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestions(ctx context.Context, page, pageSize int) (*dto.QuestionListResponse, error)
	AnswerQuestion(ctx context.Context, questionID int64, req *dto.AnswerQuestionRequest) (*dto.QuestionResponse, error)
}

// forumServiceImpl implements the ForumService interface
type forumServiceImpl struct {
	forumRepo *repositories.ForumRepository
	userRepo  *repositories.UserRepository
}

// NewForumService creates a new forum service instance
func NewForumService(forumRepo *repositories.ForumRepository, userRepo *repositories.UserRepository) ForumService {
	return &forumServiceImpl{
		forumRepo: forumRepo,
		userRepo:  userRepo,
	}
}

// AskQuestion posts a new question
func (s *forumServiceImpl) AskQuestion(ctx context.Context, userID int64, req *dto.AskQuestionRequest) (*dto.QuestionResponse, error) {
	question := sanitize.Text(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: question cannot be empty", apperrors.ErrValidationFailed)
	}

	q := &models.ForumQuestion{
		UserID:   userID,
		Question: question,
	}
	if err := s.forumRepo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("error creating question: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving asker: %w", err)
	}

	return &dto.QuestionResponse{
		ID:        q.ID,
		Username:  user.Username,
		Question:  q.Question,
		CreatedAt: q.CreatedAt,
	}, nil
}

// GetQuestions retrieves a newest-first page of questions
func (s *forumServiceImpl) GetQuestions(ctx context.Context, page, pageSize int) (*dto.QuestionListResponse, error) {
	questions, total, err := s.forumRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving questions: %w", err)
	}

	items := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		items = append(items, dto.QuestionResponse{
			ID:         q.ID,
			Username:   q.Username,
			Question:   q.Question,
			Answer:     q.Answer,
			AnsweredAt: q.AnsweredAt,
			CreatedAt:  q.CreatedAt,
		})
	}

	return &dto.QuestionListResponse{
		Questions:  items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// AnswerQuestion stores an answer on a question. An empty answer is a
// validation error, never a stored value, so an answered question can
// always be told apart from an unanswered one. Answering again simply
// replaces the previous answer.
func (s *forumServiceImpl) AnswerQuestion(ctx context.Context, questionID int64, req *dto.AnswerQuestionRequest) (*dto.QuestionResponse, error) {
	if questionID <= 0 {
		return nil, fmt.Errorf("%w: invalid question ID", apperrors.ErrValidationFailed)
	}
	answer := sanitize.Text(req.Answer)
	if answer == "" {
		return nil, fmt.Errorf("%w: answer cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.forumRepo.SetAnswer(ctx, questionID, answer); err != nil {
		if errors.Is(err, apperrors.ErrQuestionNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error answering question: %w", err)
	}

	q, err := s.forumRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}
	asker, err := s.userRepo.GetByID(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving asker: %w", err)
	}

	return &dto.QuestionResponse{
		ID:         q.ID,
		Username:   asker.Username,
		Question:   q.Question,
		Answer:     q.Answer,
		AnsweredAt: q.AnsweredAt,
		CreatedAt:  q.CreatedAt,
	}, nil
}
