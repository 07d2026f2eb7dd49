package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/redsight/redsight/internal/models"
)

func post(category string) models.ActivityRecord {
	return models.ActivityRecord{
		CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		Category:  category,
		Kind:      models.RecordKindPost,
	}
}

func TestTabulateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		posts []models.ActivityRecord
		want  []models.CategoryCount
	}{
		{
			name:  "first seen order preserved, not sorted by count",
			posts: []models.ActivityRecord{post("askscience"), post("golang"), post("golang"), post("askscience"), post("golang")},
			want: []models.CategoryCount{
				{Category: "askscience", Count: 2},
				{Category: "golang", Count: 3},
			},
		},
		{
			name:  "single category",
			posts: []models.ActivityRecord{post("news")},
			want:  []models.CategoryCount{{Category: "news", Count: 1}},
		},
		{
			name:  "zero posts yields empty table",
			posts: nil,
			want:  []models.CategoryCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TabulateCategories(tt.posts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TabulateCategories() = %v, want %v", got, tt.want)
			}
		})
	}
}
