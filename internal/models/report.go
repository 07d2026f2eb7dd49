package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RiskTier is the display label for a churn risk score
type RiskTier string

const (
	RiskTierHigh   RiskTier = "high"
	RiskTierMedium RiskTier = "medium"
	RiskTierLow    RiskTier = "low"
)

// Risk score percentages for the three tiers. Lower engagement maps to the
// HIGHER risk score; the inversion is intentional.
const (
	RiskScoreHigh   = 80
	RiskScoreMedium = 50
	RiskScoreLow    = 20
)

// TierForScore maps a risk score percentage to its display tier.
func TierForScore(score int) RiskTier {
	switch {
	case score > 70:
		return RiskTierHigh
	case score > 40:
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// ActivityTrends holds cumulative-from-now activity counts. Windows are not
// disjoint: a record inside the 30-day window is also counted in the 60- and
// 90-day windows. Recomputed on every analysis run, never cached.
type ActivityTrends struct {
	Activity30Days int `json:"activity_30_days"`
	Activity60Days int `json:"activity_60_days"`
	Activity90Days int `json:"activity_90_days"`
}

// HeatmapKey identifies one day-of-week/hour-of-day bucket.
// Day uses 0=Sunday..6=Saturday, Hour is 0..23.
type HeatmapKey struct {
	Day  int
	Hour int
}

// Heatmap is a sparse day/hour activity count. An absent key means zero.
// It marshals to the frontend's "<day>-<hour>" object form.
type Heatmap map[HeatmapKey]int

// MarshalJSON encodes the heatmap as {"<day>-<hour>": count} with keys in
// ascending (day, hour) order so output is deterministic.
func (h Heatmap) MarshalJSON() ([]byte, error) {
	keys := make([]HeatmapKey, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	// insertion sort; at most 168 keys
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && (keys[j].Day < keys[j-1].Day ||
			(keys[j].Day == keys[j-1].Day && keys[j].Hour < keys[j-1].Hour)); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:%d", fmt.Sprintf("%d-%d", k.Day, k.Hour), h[k])
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes the "<day>-<hour>" object form back into the map.
func (h *Heatmap) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Heatmap, len(raw))
	for key, count := range raw {
		parts := strings.SplitN(key, "-", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid heatmap key: %q", key)
		}
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid heatmap day in key %q: %w", key, err)
		}
		hour, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("invalid heatmap hour in key %q: %w", key, err)
		}
		out[HeatmapKey{Day: day, Hour: hour}] = count
	}
	*h = out
	return nil
}

// ChurnBreakdown records the weighted terms and factors behind a churn score.
// It documents the computation for display and auditing; nothing consumes it
// further. (posts + comments + karma + activity) * trend * recency reproduces
// the raw churn score.
type ChurnBreakdown struct {
	Posts         float64 `json:"posts"`
	Comments      float64 `json:"comments"`
	Karma         float64 `json:"karma"`
	Activity      float64 `json:"activity"`
	TrendFactor   float64 `json:"trend_factor"`
	RecencyFactor float64 `json:"recency_factor"`
}

// CategoryCount is one row of a frequency table. Tables preserve first-seen
// insertion order; the core never re-sorts them.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// UserInfo is the account summary block of a report.
type UserInfo struct {
	Username        string `json:"username"`
	Karma           int    `json:"karma"`
	AccountAgeYears int    `json:"account_age_years"`
}

// ProfileStats holds the per-post profile metrics computed from submissions.
type ProfileStats struct {
	AverageScore       float64         `json:"average_score"`
	AverageComments    float64         `json:"average_comments"`
	PostEngagement     int             `json:"post_engagement"`
	SubredditDiversity int             `json:"subreddit_diversity"`
	CommonSubreddits   []CategoryCount `json:"common_subreddits"`
	CommonFlairs       []CategoryCount `json:"common_flairs"`
}

// AnalysisReport is the output bundle handed to the presentation layer.
// It is a pure value: built fresh per analysis invocation and never mutated
// after being returned. ID and GeneratedAt are presentation metadata set by
// the caller, not derived state.
type AnalysisReport struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	UserInfo          UserInfo        `json:"user_info"`
	PostEngagement    int             `json:"post_engagement"`
	CommentEngagement int             `json:"comment_engagement"`
	SubredditActivity []CategoryCount `json:"subreddit_activity"`
	EngagementRatio   float64         `json:"engagement_ratio"`
	ActivityTrends    ActivityTrends  `json:"activity_trends"`
	Heatmap           Heatmap         `json:"heatmap"`
	HourlyActivity    [24]int         `json:"hourly_activity"`
	RiskScore         int             `json:"risk_score"`
	RiskTier          RiskTier        `json:"risk_tier"`
	Breakdown         ChurnBreakdown  `json:"breakdown"`
	Insights          []string        `json:"insights"`
	ProfileStats      ProfileStats    `json:"profile_stats"`
}
