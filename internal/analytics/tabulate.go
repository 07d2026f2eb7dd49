package analytics

import (
	"github.com/redsight/redsight/internal/models"
)

// TabulateCategories counts post occurrences per subreddit. The result keeps
// first-seen insertion order; chart coloring downstream does its own sorting
// if it wants one. Zero posts yields an empty (non-nil) table, which the
// presentation layer reads as "not enough data" rather than an error.
func TabulateCategories(posts []models.ActivityRecord) []models.CategoryCount {
	return tabulate(posts, func(r models.ActivityRecord) string { return r.Category }, 0)
}

// tabulate builds a first-seen-order frequency table over the given key,
// skipping empty keys and dropping rows with count <= minCount.
func tabulate(records []models.ActivityRecord, key func(models.ActivityRecord) string, minCount int) []models.CategoryCount {
	index := make(map[string]int, len(records))
	table := make([]models.CategoryCount, 0, len(records))
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			table[i].Count++
			continue
		}
		index[k] = len(table)
		table = append(table, models.CategoryCount{Category: k, Count: 1})
	}
	if minCount <= 0 {
		return table
	}
	filtered := make([]models.CategoryCount, 0, len(table))
	for _, row := range table {
		if row.Count > minCount {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
