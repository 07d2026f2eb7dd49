package analytics

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/redsight/redsight/internal/models"
)

func sampleActivity(now time.Time) *models.UserActivity {
	return &models.UserActivity{
		Metadata: models.AccountMetadata{
			Username:   "gopher_dev",
			TotalKarma: 12000,
			CreatedAt:  time.Date(2019, time.July, 4, 0, 0, 0, 0, time.UTC),
		},
		Posts: []models.ActivityRecord{
			{CreatedAt: now.Add(-2 * 24 * time.Hour), Category: "golang", Kind: models.RecordKindPost, Score: 50, NumComments: 12},
			{CreatedAt: now.Add(-40 * 24 * time.Hour), Category: "golang", Kind: models.RecordKindPost, Score: 8, NumComments: 3},
			{CreatedAt: now.Add(-70 * 24 * time.Hour), Category: "askscience", Kind: models.RecordKindPost, Score: 120, NumComments: 40},
		},
		Comments: []models.ActivityRecord{
			{CreatedAt: now.Add(-1 * 24 * time.Hour), Category: "golang", Kind: models.RecordKindComment},
			{CreatedAt: now.Add(-85 * 24 * time.Hour), Category: "news", Kind: models.RecordKindComment},
		},
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	report := NewAnalyzer(time.UTC).Analyze(sampleActivity(now), now)

	if report.UserInfo.Username != "gopher_dev" {
		t.Errorf("Username = %q", report.UserInfo.Username)
	}
	if report.UserInfo.AccountAgeYears != 7 {
		t.Errorf("AccountAgeYears = %d, want 7", report.UserInfo.AccountAgeYears)
	}
	if report.PostEngagement != 3 || report.CommentEngagement != 2 {
		t.Errorf("engagement counts = %d/%d, want 3/2", report.PostEngagement, report.CommentEngagement)
	}
	want := models.ActivityTrends{Activity30Days: 2, Activity60Days: 3, Activity90Days: 5}
	if report.ActivityTrends != want {
		t.Errorf("ActivityTrends = %+v, want %+v", report.ActivityTrends, want)
	}
	// raw = 3*0.3 + 2*0.2 + 12000*0.2 + 2*0.3 = 2401.9; churn = 2401.9*1.5*0.4 = 1441.14
	if report.RiskScore != models.RiskScoreHigh {
		t.Errorf("RiskScore = %d, want %d (breakdown %+v)", report.RiskScore, models.RiskScoreHigh, report.Breakdown)
	}
	if report.RiskTier != models.TierForScore(report.RiskScore) {
		t.Errorf("RiskTier = %q inconsistent with score %d", report.RiskTier, report.RiskScore)
	}
	if len(report.Insights) == 0 {
		t.Error("insights empty; expected at least one message")
	}
	if len(report.SubredditActivity) != 2 || report.SubredditActivity[0].Category != "golang" {
		t.Errorf("SubredditActivity = %v", report.SubredditActivity)
	}
}

func TestAnalyzer_Analyze_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	analyzer := NewAnalyzer(time.UTC)
	activity := sampleActivity(now)

	first := analyzer.Analyze(activity, now)
	second := analyzer.Analyze(activity, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs with identical inputs and now produced different reports")
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Fatal("serialized bundles are not byte-identical")
	}
}

func TestAnalyzer_Analyze_EmptyActivity(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	activity := &models.UserActivity{
		Metadata: models.AccountMetadata{Username: "lurker", TotalKarma: 0, CreatedAt: now},
	}

	report := NewAnalyzer(time.UTC).Analyze(activity, now)

	if report.PostEngagement != 0 || report.CommentEngagement != 0 {
		t.Errorf("engagement = %d/%d, want 0/0", report.PostEngagement, report.CommentEngagement)
	}
	if len(report.SubredditActivity) != 0 {
		t.Errorf("SubredditActivity = %v, want empty", report.SubredditActivity)
	}
	if len(report.Heatmap) != 0 {
		t.Errorf("Heatmap = %v, want empty", report.Heatmap)
	}
	if report.ActivityTrends != (models.ActivityTrends{}) {
		t.Errorf("ActivityTrends = %+v, want zero", report.ActivityTrends)
	}
	if report.EngagementRatio != 0 {
		t.Errorf("EngagementRatio = %v, want 0", report.EngagementRatio)
	}
	// Empty history is a well-formed result, not an error: the report still
	// carries insights (the low-activity warnings fire).
	if len(report.Insights) == 0 {
		t.Error("expected insights for an idle account")
	}
}
