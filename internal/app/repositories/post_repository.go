package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// PostDetails is a feed post joined with its author's handle.
type PostDetails struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	Username  string    `db:"username" json:"username"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// PostRepository handles database operations for feed posts
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new post and sets its generated ID
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	sql, args, err := r.sb.Insert("posts").
		Columns("user_id", "content").
		Values(post.UserID, post.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create post SQL")
		return fmt.Errorf("failed to build create post query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", post.UserID).Msg("Error executing create post query")
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

// GetAll retrieves a newest-first page of the feed with author handles
func (r *PostRepository) GetAll(ctx context.Context, page, pageSize int) ([]*PostDetails, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.sb.Select("p.id", "p.user_id", "u.username", "p.content", "p.created_at").
		From("posts p").
		Join("users u ON p.user_id = u.id").
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing get posts query: %w", err)
	}
	defer rows.Close()

	var posts []*PostDetails
	for rows.Next() {
		var p PostDetails
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.Content, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating post rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("posts").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count posts query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	return posts, total, nil
}
