package services

import (
	"context"
	"fmt"

	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
)

// LeaderboardService defines the interface for the points leaderboard
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) (*dto.LeaderboardResponse, error)
	GetMyRank(ctx context.Context, username string) (*dto.MyRankResponse, error)
}

// leaderboardServiceImpl implements the LeaderboardService interface
type leaderboardServiceImpl struct {
	contributionRepo *repositories.ContributionRepository
}

// NewLeaderboardService creates a new leaderboard service instance
func NewLeaderboardService(contributionRepo *repositories.ContributionRepository) LeaderboardService {
	return &leaderboardServiceImpl{contributionRepo: contributionRepo}
}

// collect gathers every contribution category and merges them per handle
func (s *leaderboardServiceImpl) collect(ctx context.Context) (map[string]ContributionCounts, error) {
	posts, err := s.contributionRepo.CountPostsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting posts: %w", err)
	}
	notes, err := s.contributionRepo.CountNotesByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting notes: %w", err)
	}
	courses, err := s.contributionRepo.CountCoursesByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}
	answered, err := s.contributionRepo.CountAnsweredQuestionsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting answered questions: %w", err)
	}
	projects, err := s.contributionRepo.CountProjectMembershipsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting project memberships: %w", err)
	}
	hackathons, err := s.contributionRepo.CountHackathonParticipationsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting hackathon participations: %w", err)
	}
	noteScores, err := s.contributionRepo.SumNoteScoresByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error summing note scores: %w", err)
	}

	return MergeContributions(posts, notes, courses, answered, projects, hackathons, noteScores), nil
}

// GetLeaderboard computes the full ordered board
func (s *leaderboardServiceImpl) GetLeaderboard(ctx context.Context) (*dto.LeaderboardResponse, error) {
	contributions, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	ranked := RankContributions(contributions)
	entries := make([]dto.LeaderboardEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:     r.Rank,
			Medal:    r.Medal,
			Username: r.Username,
			Score:    r.Score,
		})
	}

	return &dto.LeaderboardResponse{Entries: entries}, nil
}

// GetMyRank reports the caller's own rank. A user with no
// contributions at all is unranked rather than ranked last.
func (s *leaderboardServiceImpl) GetMyRank(ctx context.Context, username string) (*dto.MyRankResponse, error) {
	contributions, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := contributions[username]; !ok {
		return &dto.MyRankResponse{
			Ranked:   false,
			Username: username,
		}, nil
	}

	for _, r := range RankContributions(contributions) {
		if r.Username == username {
			return &dto.MyRankResponse{
				Ranked:   true,
				Rank:     r.Rank,
				Score:    r.Score,
				Username: username,
			}, nil
		}
	}

	// Unreachable once the handle is present in the merged map.
	return &dto.MyRankResponse{Ranked: false, Username: username}, nil
}
