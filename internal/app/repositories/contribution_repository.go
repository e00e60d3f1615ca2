package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContributionRepository aggregates per-user contribution counts for
// the leaderboard. Every method returns a map keyed by the user's
// handle; users with no activity in a category are simply absent.
type ContributionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContributionRepository creates a new ContributionRepository
func NewContributionRepository(db *pgxpool.Pool) *ContributionRepository {
	return &ContributionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ContributionRepository) countByUsername(ctx context.Context, builder squirrel.SelectBuilder) (map[string]int, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build contribution count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing contribution count query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var username string
		var count int
		if err := rows.Scan(&username, &count); err != nil {
			return nil, fmt.Errorf("error scanning contribution count row: %w", err)
		}
		counts[username] = count
	}
	return counts, rows.Err()
}

// CountPostsByUser counts feed posts per author
func (r *ContributionRepository) CountPostsByUser(ctx context.Context) (map[string]int, error) {
	return r.countByUsername(ctx, r.sb.Select("u.username", "COUNT(*)").
		From("posts p").
		Join("users u ON p.user_id = u.id").
		GroupBy("u.username"))
}

// CountNotesByUser counts uploaded notes per uploader
func (r *ContributionRepository) CountNotesByUser(ctx context.Context) (map[string]int, error) {
	return r.countByUsername(ctx, r.sb.Select("u.username", "COUNT(*)").
		From("notes n").
		Join("users u ON n.user_id = u.id").
		GroupBy("u.username"))
}

// CountCoursesByUser counts shared courses per sharer
func (r *ContributionRepository) CountCoursesByUser(ctx context.Context) (map[string]int, error) {
	return r.countByUsername(ctx, r.sb.Select("u.username", "COUNT(*)").
		From("courses c").
		Join("users u ON c.user_id = u.id").
		GroupBy("u.username"))
}

// CountAnsweredQuestionsByUser counts answered forum questions per
// asker. Credit goes to the user who posted the question, and only
// non-empty answers count.
func (r *ContributionRepository) CountAnsweredQuestionsByUser(ctx context.Context) (map[string]int, error) {
	return r.countByUsername(ctx, r.sb.Select("u.username", "COUNT(*)").
		From("forum_questions q").
		Join("users u ON q.user_id = u.id").
		Where("q.answer IS NOT NULL AND q.answer <> ''").
		GroupBy("u.username"))
}

// CountProjectMembershipsByUser counts project memberships per user
func (r *ContributionRepository) CountProjectMembershipsByUser(ctx context.Context) (map[string]int, error) {
	return r.countByUsername(ctx, r.sb.Select("u.username", "COUNT(*)").
		From("project_members pm").
		Join("users u ON pm.user_id = u.id").
		GroupBy("u.username"))
}

// CountHackathonParticipationsByUser counts hackathon participations per user
func (r *ContributionRepository) CountHackathonParticipationsByUser(ctx context.Context) (map[string]int, error) {
	return r.countByUsername(ctx, r.sb.Select("u.username", "COUNT(*)").
		From("hackathon_participants hp").
		Join("users u ON hp.user_id = u.id").
		GroupBy("u.username"))
}

// SumNoteScoresByUser sums each uploader's per-note average ratings.
// Each note's average is rounded to one decimal first so the sum
// matches what the note listings display.
func (r *ContributionRepository) SumNoteScoresByUser(ctx context.Context) (map[string]float64, error) {
	sql := `
		SELECT username, SUM(note_avg)::float8
		FROM (
			SELECT u.username AS username, ROUND(AVG(nr.rating)::numeric, 1) AS note_avg
			FROM notes n
			JOIN users u ON n.user_id = u.id
			JOIN note_ratings nr ON nr.note_id = n.id
			GROUP BY u.username, n.id
		) per_note
		GROUP BY username
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("error executing note score sum query: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var username string
		var sum float64
		if err := rows.Scan(&username, &sum); err != nil {
			return nil, fmt.Errorf("error scanning note score sum row: %w", err)
		}
		sums[username] = sum
	}
	return sums, rows.Err()
}
