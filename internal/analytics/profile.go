package analytics

import (
	"github.com/redsight/redsight/internal/models"
)

// minCommonCount is the repeat threshold for the common subreddit/flair
// tables: a category must appear more than once to be "common".
const minCommonCount = 1

// ComputeProfileStats derives the per-post profile metrics from a user's
// submissions: average score, average comment count, the summed post
// engagement (score + comments per post), how many distinct subreddits were
// posted to, and which subreddits/flairs repeat. Zero posts yields zero
// averages and empty tables rather than an error.
func ComputeProfileStats(posts []models.ActivityRecord) models.ProfileStats {
	stats := models.ProfileStats{
		CommonSubreddits: []models.CategoryCount{},
		CommonFlairs:     []models.CategoryCount{},
	}
	if len(posts) == 0 {
		return stats
	}

	var scoreSum, commentSum int
	distinct := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		scoreSum += p.Score
		commentSum += p.NumComments
		stats.PostEngagement += p.Score + p.NumComments
		if p.Category != "" {
			distinct[p.Category] = struct{}{}
		}
	}

	n := float64(len(posts))
	stats.AverageScore = round2(float64(scoreSum) / n)
	stats.AverageComments = round2(float64(commentSum) / n)
	stats.SubredditDiversity = len(distinct)
	stats.CommonSubreddits = tabulate(posts, func(r models.ActivityRecord) string { return r.Category }, minCommonCount)
	stats.CommonFlairs = tabulate(posts, func(r models.ActivityRecord) string { return r.Flair }, minCommonCount)
	return stats
}
