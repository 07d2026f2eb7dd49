// Package analytics derives engagement and churn-risk metrics from a user's
// Reddit activity. Every function takes time explicitly and performs no I/O,
// so the whole pipeline is a pure function of its inputs and the supplied
// instant: safe to run concurrently for different users, trivially
// reproducible in tests.
package analytics

import (
	"time"

	"github.com/redsight/redsight/internal/models"
)

// Analyzer runs the full analysis pipeline. The location controls how
// timestamps are bucketed for the heatmap and hourly histogram; it must match
// whatever day/hour labels the presentation layer renders.
type Analyzer struct {
	loc *time.Location
}

// NewAnalyzer creates an analyzer bucketing timestamps in loc.
// A nil loc means UTC.
func NewAnalyzer(loc *time.Location) *Analyzer {
	if loc == nil {
		loc = time.UTC
	}
	return &Analyzer{loc: loc}
}

// Analyze computes the complete report bundle for one user's activity at the
// given instant. Calling it twice with identical inputs and the same now
// produces identical bundles; report ID assignment is left to the caller so
// the computation itself stays deterministic.
func (a *Analyzer) Analyze(activity *models.UserActivity, now time.Time) *models.AnalysisReport {
	meta := activity.Metadata
	posts := activity.Posts
	comments := activity.Comments

	trends, heatmap, hourly := AggregateActivity(posts, comments, now, a.loc)
	subreddits := TabulateCategories(posts)
	riskScore, breakdown := ScoreChurn(len(posts), len(comments), meta.TotalKarma, trends)
	ratio := EngagementRatio(len(posts), len(comments), meta.TotalKarma)

	return &models.AnalysisReport{
		GeneratedAt: now,
		UserInfo: models.UserInfo{
			Username:        meta.Username,
			Karma:           meta.TotalKarma,
			AccountAgeYears: AccountAgeYears(meta.CreatedAt, now),
		},
		PostEngagement:    len(posts),
		CommentEngagement: len(comments),
		SubredditActivity: subreddits,
		EngagementRatio:   ratio,
		ActivityTrends:    trends,
		Heatmap:           heatmap,
		HourlyActivity:    hourly,
		RiskScore:         riskScore,
		RiskTier:          models.TierForScore(riskScore),
		Breakdown:         breakdown,
		Insights:          GenerateInsights(riskScore, ratio, trends),
		ProfileStats:      ComputeProfileStats(posts),
	}
}
