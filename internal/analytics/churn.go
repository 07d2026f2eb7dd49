package analytics

import (
	"math"

	"github.com/redsight/redsight/internal/models"
)

const (
	// PostWeight is the weight given to post volume in the churn score
	PostWeight = 0.3
	// CommentWeight is the weight given to comment volume in the churn score
	CommentWeight = 0.2
	// KarmaWeight is the weight given to total karma in the churn score
	KarmaWeight = 0.2
	// RecentActivityWeight is the weight given to 30-day activity in the churn score
	RecentActivityWeight = 0.3

	// ActiveRecencyFactor discounts the score when there was any 30-day activity
	ActiveRecencyFactor = 0.4
	// IdleRecencyFactor applies when the last 30 days are completely quiet
	IdleRecencyFactor = 1.0

	// SteadyTrendFactor applies when the 60-day count exceeds the 90-day count
	SteadyTrendFactor = 1.0
	// DecliningTrendFactor applies otherwise
	DecliningTrendFactor = 1.5

	// MediumRiskThreshold is the churn score below which risk is high
	MediumRiskThreshold = 1500
	// LowRiskThreshold is the churn score below which risk is medium
	LowRiskThreshold = 4000
)

// ScoreChurn combines engagement volume, karma and the recent-activity trend
// into a three-tier risk score with a transparent per-factor breakdown.
// The relationship is inverted: a LOW engagement score maps to a HIGH risk
// percentage. Pure and deterministic; negative karma, zero activity and very
// large counts all produce a defined result.
//
// Note on the trend comparison: with cumulative windows the 60-day count can
// never exceed the 90-day count, so DecliningTrendFactor applies unless the
// two counts are exactly equal. That is the scoring behavior the product
// shipped with and it is kept as-is.
func ScoreChurn(postCount, commentCount, totalKarma int, trends models.ActivityTrends) (int, models.ChurnBreakdown) {
	recencyFactor := IdleRecencyFactor
	if trends.Activity30Days > 0 {
		recencyFactor = ActiveRecencyFactor
	}

	trendFactor := DecliningTrendFactor
	if trends.Activity60Days > trends.Activity90Days {
		trendFactor = SteadyTrendFactor
	}

	breakdown := models.ChurnBreakdown{
		Posts:         float64(postCount) * PostWeight,
		Comments:      float64(commentCount) * CommentWeight,
		Karma:         float64(totalKarma) * KarmaWeight,
		Activity:      float64(trends.Activity30Days) * RecentActivityWeight,
		TrendFactor:   trendFactor,
		RecencyFactor: recencyFactor,
	}

	rawScore := breakdown.Posts + breakdown.Comments + breakdown.Karma + breakdown.Activity
	churnScore := rawScore * trendFactor * recencyFactor

	switch {
	case churnScore < MediumRiskThreshold:
		return models.RiskScoreHigh, breakdown
	case churnScore < LowRiskThreshold:
		return models.RiskScoreMedium, breakdown
	default:
		return models.RiskScoreLow, breakdown
	}
}

// EngagementRatio is total activity volume over karma, a crude proxy for
// activity per unit of accumulated reputation. The denominator is floored at
// 1 rather than branched on, so zero and negative karma never divide by zero.
// Rounded to two decimal places.
func EngagementRatio(postCount, commentCount, totalKarma int) float64 {
	denom := totalKarma
	if denom < 1 {
		denom = 1
	}
	return round2(float64(postCount+commentCount) / float64(denom))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
