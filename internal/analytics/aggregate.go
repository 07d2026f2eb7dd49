package analytics

import (
	"time"

	"github.com/redsight/redsight/internal/models"
)

// trendWindows are the rolling window sizes, in days, used for activity trends.
var trendWindows = []int{30, 60, 90}

// AggregateActivity derives the rolling-window trends, the day/hour heatmap
// and the 24-bucket hourly histogram from one user's posts and comments.
//
// Windows are cumulative from now, not disjoint: a record counted in the
// 30-day window is also counted in the 60- and 90-day windows. Heatmap and
// histogram bucketing use the timestamp's representation in loc so that the
// buckets line up with the day/hour labels rendered downstream.
//
// Empty inputs produce zero trends and an empty (non-nil) heatmap.
func AggregateActivity(posts, comments []models.ActivityRecord, now time.Time, loc *time.Location) (models.ActivityTrends, models.Heatmap, [24]int) {
	if loc == nil {
		loc = time.UTC
	}

	var trends models.ActivityTrends
	counts := make([]int, len(trendWindows))
	for i, days := range trendWindows {
		for _, r := range posts {
			if WithinWindow(r.CreatedAt, now, days) {
				counts[i]++
			}
		}
		for _, r := range comments {
			if WithinWindow(r.CreatedAt, now, days) {
				counts[i]++
			}
		}
	}
	trends.Activity30Days = counts[0]
	trends.Activity60Days = counts[1]
	trends.Activity90Days = counts[2]

	heatmap := make(models.Heatmap)
	var hourly [24]int
	bucket := func(records []models.ActivityRecord) {
		for _, r := range records {
			local := r.CreatedAt.In(loc)
			day := int(local.Weekday()) // 0=Sunday per time.Weekday
			hour := local.Hour()
			heatmap[models.HeatmapKey{Day: day, Hour: hour}]++
			hourly[hour]++
		}
	}
	bucket(posts)
	bucket(comments)

	return trends, heatmap, hourly
}
