package services

import "sort"

// Contribution weights. A user's score is the weighted sum of their
// activity counts plus the unweighted sum of their per-note average
// ratings.
const (
	WeightPost                   = 2
	WeightNote                   = 3
	WeightCourse                 = 2
	WeightAnsweredQuestion       = 4
	WeightProjectMembership      = 3
	WeightHackathonParticipation = 5
)

// Medal labels for the top three ranks; everyone else gets a star.
const (
	MedalGold   = "gold"
	MedalSilver = "silver"
	MedalBronze = "bronze"
	MedalStar   = "star"
)

// ContributionCounts collects one user's activity across every scored
// category. NoteScoreSum is the sum of the user's per-note average
// ratings, already rounded to one decimal per note.
type ContributionCounts struct {
	Posts                   int
	Notes                   int
	NoteScoreSum            float64
	Courses                 int
	AnsweredQuestions       int
	ProjectMemberships      int
	HackathonParticipations int
}

// Score computes the weighted contribution score.
func (c ContributionCounts) Score() float64 {
	weighted := c.Posts*WeightPost +
		c.Notes*WeightNote +
		c.Courses*WeightCourse +
		c.AnsweredQuestions*WeightAnsweredQuestion +
		c.ProjectMemberships*WeightProjectMembership +
		c.HackathonParticipations*WeightHackathonParticipation
	return float64(weighted) + c.NoteScoreSum
}

// RankedUser is one scored and ranked leaderboard row.
type RankedUser struct {
	Rank     int
	Medal    string
	Username string
	Score    float64
}

// MergeContributions combines the per-category maps into one entry per
// handle. A user appears as soon as they show up in any category;
// categories they have no activity in stay zero.
func MergeContributions(
	posts, notes, courses, answeredQuestions, projectMemberships, hackathonParticipations map[string]int,
	noteScoreSums map[string]float64,
) map[string]ContributionCounts {
	merged := make(map[string]ContributionCounts)

	ensure := func(username string) ContributionCounts {
		return merged[username]
	}

	for username, n := range posts {
		c := ensure(username)
		c.Posts = n
		merged[username] = c
	}
	for username, n := range notes {
		c := ensure(username)
		c.Notes = n
		merged[username] = c
	}
	for username, n := range courses {
		c := ensure(username)
		c.Courses = n
		merged[username] = c
	}
	for username, n := range answeredQuestions {
		c := ensure(username)
		c.AnsweredQuestions = n
		merged[username] = c
	}
	for username, n := range projectMemberships {
		c := ensure(username)
		c.ProjectMemberships = n
		merged[username] = c
	}
	for username, n := range hackathonParticipations {
		c := ensure(username)
		c.HackathonParticipations = n
		merged[username] = c
	}
	for username, sum := range noteScoreSums {
		c := ensure(username)
		c.NoteScoreSum = sum
		merged[username] = c
	}

	return merged
}

// RankContributions orders users by score descending, breaking ties by
// handle ascending, and assigns 1-based ranks and medals.
func RankContributions(contributions map[string]ContributionCounts) []RankedUser {
	ranked := make([]RankedUser, 0, len(contributions))
	for username, counts := range contributions {
		ranked = append(ranked, RankedUser{
			Username: username,
			Score:    counts.Score(),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Username < ranked[j].Username
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Medal = medalForRank(ranked[i].Rank)
	}

	return ranked
}

func medalForRank(rank int) string {
	switch rank {
	case 1:
		return MedalGold
	case 2:
		return MedalSilver
	case 3:
		return MedalBronze
	default:
		return MedalStar
	}
}
