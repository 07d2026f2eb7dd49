package analytics

import (
	"reflect"
	"testing"

	"github.com/redsight/redsight/internal/models"
)

func TestGenerateInsights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		riskScore int
		ratio     float64
		trends    models.ActivityTrends
		want      []string
	}{
		{
			name:      "all four warnings in fixed order",
			riskScore: 80,
			ratio:     0.02,
			trends:    models.ActivityTrends{Activity30Days: 1, Activity60Days: 5},
			want: []string{
				InsightHighChurnRisk,
				InsightLowEngagement,
				InsightLowRecentActivity,
				InsightDecliningTrend,
			},
		},
		{
			name:      "healthy user gets exactly the positive message",
			riskScore: 20,
			ratio:     0.5,
			trends:    models.ActivityTrends{Activity30Days: 10, Activity60Days: 5},
			want:      []string{InsightHealthy},
		},
		{
			name:      "only declining trend",
			riskScore: 50,
			ratio:     0.2,
			trends:    models.ActivityTrends{Activity30Days: 4, Activity60Days: 9},
			want:      []string{InsightDecliningTrend},
		},
		{
			name:      "risk boundary not crossed at exactly 70",
			riskScore: 70,
			ratio:     0.5,
			trends:    models.ActivityTrends{Activity30Days: 8, Activity60Days: 8},
			want:      []string{InsightHealthy},
		},
		{
			name:      "ratio boundary not crossed at exactly 0.05",
			riskScore: 20,
			ratio:     0.05,
			trends:    models.ActivityTrends{Activity30Days: 5, Activity60Days: 5},
			want:      []string{InsightHealthy},
		},
		{
			name:      "activity boundary crossed below 3",
			riskScore: 20,
			ratio:     0.5,
			trends:    models.ActivityTrends{Activity30Days: 2, Activity60Days: 2},
			want:      []string{InsightLowRecentActivity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GenerateInsights(tt.riskScore, tt.ratio, tt.trends)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateInsights() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateInsights_Deterministic(t *testing.T) {
	t.Parallel()

	trends := models.ActivityTrends{Activity30Days: 1, Activity60Days: 5}
	first := GenerateInsights(80, 0.02, trends)
	for i := 0; i < 10; i++ {
		if got := GenerateInsights(80, 0.02, trends); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %v vs %v", i, got, first)
		}
	}
}
