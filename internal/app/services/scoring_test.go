package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionCountsScore(t *testing.T) {
	t.Run("empty counts score zero", func(t *testing.T) {
		assert.Zero(t, ContributionCounts{}.Score())
	})

	t.Run("each category is weighted", func(t *testing.T) {
		assert.InDelta(t, 2.0, ContributionCounts{Posts: 1}.Score(), 1e-9)
		assert.InDelta(t, 3.0, ContributionCounts{Notes: 1}.Score(), 1e-9)
		assert.InDelta(t, 2.0, ContributionCounts{Courses: 1}.Score(), 1e-9)
		assert.InDelta(t, 4.0, ContributionCounts{AnsweredQuestions: 1}.Score(), 1e-9)
		assert.InDelta(t, 3.0, ContributionCounts{ProjectMemberships: 1}.Score(), 1e-9)
		assert.InDelta(t, 5.0, ContributionCounts{HackathonParticipations: 1}.Score(), 1e-9)
	})

	t.Run("note rating averages are added unweighted", func(t *testing.T) {
		counts := ContributionCounts{
			Posts:        2, // 4
			Notes:        1, // 3
			NoteScoreSum: 4.5,
		}
		assert.InDelta(t, 11.5, counts.Score(), 1e-9)
	})
}

func TestMergeContributions(t *testing.T) {
	merged := MergeContributions(
		map[string]int{"maya": 3},
		map[string]int{"maya": 1, "arjun": 2},
		map[string]int{"arjun": 1},
		map[string]int{"priya": 4},
		nil,
		map[string]int{"maya": 1},
		map[string]float64{"arjun": 7.5},
	)

	require.Len(t, merged, 3)

	assert.Equal(t, ContributionCounts{Posts: 3, Notes: 1, HackathonParticipations: 1}, merged["maya"])
	assert.Equal(t, ContributionCounts{Notes: 2, Courses: 1, NoteScoreSum: 7.5}, merged["arjun"])

	// A user counted in a single category still gets a full entry
	assert.Equal(t, ContributionCounts{AnsweredQuestions: 4}, merged["priya"])
}

func TestRankContributions(t *testing.T) {
	t.Run("orders by score descending with 1-based ranks", func(t *testing.T) {
		ranked := RankContributions(map[string]ContributionCounts{
			"low":  {Posts: 1},                      // 2
			"high": {HackathonParticipations: 2},    // 10
			"mid":  {Notes: 1, NoteScoreSum: 3.0},   // 6
			"tail": {},                              // 0
		})

		require.Len(t, ranked, 4)
		assert.Equal(t, "high", ranked[0].Username)
		assert.Equal(t, "mid", ranked[1].Username)
		assert.Equal(t, "low", ranked[2].Username)
		assert.Equal(t, "tail", ranked[3].Username)

		for i, row := range ranked {
			assert.Equal(t, i+1, row.Rank)
		}
	})

	t.Run("ties break by handle ascending", func(t *testing.T) {
		ranked := RankContributions(map[string]ContributionCounts{
			"zoe":   {Posts: 1},
			"amir":  {Posts: 1},
			"nadia": {Posts: 1},
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, "amir", ranked[0].Username)
		assert.Equal(t, "nadia", ranked[1].Username)
		assert.Equal(t, "zoe", ranked[2].Username)
	})

	t.Run("top three get medals, the rest get stars", func(t *testing.T) {
		ranked := RankContributions(map[string]ContributionCounts{
			"a": {HackathonParticipations: 4},
			"b": {HackathonParticipations: 3},
			"c": {HackathonParticipations: 2},
			"d": {HackathonParticipations: 1},
			"e": {},
		})

		require.Len(t, ranked, 5)
		assert.Equal(t, MedalGold, ranked[0].Medal)
		assert.Equal(t, MedalSilver, ranked[1].Medal)
		assert.Equal(t, MedalBronze, ranked[2].Medal)
		assert.Equal(t, MedalStar, ranked[3].Medal)
		assert.Equal(t, MedalStar, ranked[4].Medal)
	})

	t.Run("empty input yields an empty board", func(t *testing.T) {
		assert.Empty(t, RankContributions(nil))
	})
}
