package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// QuestionDetails is a forum question joined with the asker's handle.
type QuestionDetails struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"userId"`
	Username   string     `db:"username" json:"username"`
	Question   string     `db:"question" json:"question"`
	Answer     *string    `db:"answer" json:"answer,omitempty"`
	AnsweredAt *time.Time `db:"answered_at" json:"answeredAt,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// ForumRepository handles database operations for the Q&A forum
type ForumRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new question and sets its generated ID
func (r *ForumRepository) Create(ctx context.Context, question *models.ForumQuestion) error {
	sql, args, err := r.sb.Insert("forum_questions").
		Columns("user_id", "question").
		Values(question.UserID, question.Question).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create question SQL")
		return fmt.Errorf("failed to build create question query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&question.ID, &question.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", question.UserID).Msg("Error executing create question query")
		return fmt.Errorf("error creating question: %w", err)
	}
	return nil
}

// GetAll retrieves a newest-first page of questions with asker handles
func (r *ForumRepository) GetAll(ctx context.Context, page, pageSize int) ([]*QuestionDetails, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.sb.Select(
		"q.id", "q.user_id", "u.username", "q.question", "q.answer", "q.answered_at", "q.created_at",
	).
		From("forum_questions q").
		Join("users u ON q.user_id = u.id").
		OrderBy("q.created_at DESC", "q.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing get questions query: %w", err)
	}
	defer rows.Close()

	var questions []*QuestionDetails
	for rows.Next() {
		var q QuestionDetails
		if err := rows.Scan(&q.ID, &q.UserID, &q.Username, &q.Question, &q.Answer, &q.AnsweredAt, &q.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating question rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("forum_questions").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count questions query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting questions: %w", err)
	}

	return questions, total, nil
}

// GetByID retrieves a single question
func (r *ForumRepository) GetByID(ctx context.Context, id int64) (*models.ForumQuestion, error) {
	sql, args, err := r.sb.Select("id", "user_id", "question", "answer", "answered_at", "created_at").
		From("forum_questions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get question query: %w", err)
	}

	var q models.ForumQuestion
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&q.ID, &q.UserID, &q.Question, &q.Answer, &q.AnsweredAt, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}
	return &q, nil
}

// SetAnswer stores an answer on a question. Answering again replaces
// the previous answer and refreshes the answered timestamp.
func (r *ForumRepository) SetAnswer(ctx context.Context, id int64, answer string) error {
	sql, args, err := r.sb.Update("forum_questions").
		Set("answer", answer).
		Set("answered_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set answer SQL")
		return fmt.Errorf("failed to build set answer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("questionID", id).Msg("Error executing set answer query")
		return fmt.Errorf("error answering question: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}
	return nil
}
