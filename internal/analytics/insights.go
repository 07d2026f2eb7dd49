package analytics

import (
	"github.com/redsight/redsight/internal/models"
)

// Advisory texts shown on the dashboard. The healthy message is emitted
// alone when no warning rule fires.
const (
	InsightHighChurnRisk     = "High churn risk: increase activity to retain visibility."
	InsightLowEngagement     = "Low engagement ratio: try participating more in discussions."
	InsightLowRecentActivity = "Very low recent activity: aim for weekly consistency."
	InsightDecliningTrend    = "Declining trend: re-engage to bounce back."
	InsightHealthy           = "You're on a healthy Reddit usage trend!"
)

// Thresholds for the insight rules.
const (
	highRiskThreshold       = 70
	lowEngagementRatio      = 0.05
	lowRecentActivityFloor  = 3
)

// GenerateInsights applies the advisory rules in a fixed order, each gated
// independently, and returns the triggered messages. Evaluation order is part
// of the contract so the dashboard list is stable between runs. If nothing
// triggers, the single healthy-status message is returned.
func GenerateInsights(riskScore int, engagementRatio float64, trends models.ActivityTrends) []string {
	insights := make([]string, 0, 4)
	if riskScore > highRiskThreshold {
		insights = append(insights, InsightHighChurnRisk)
	}
	if engagementRatio < lowEngagementRatio {
		insights = append(insights, InsightLowEngagement)
	}
	if trends.Activity30Days < lowRecentActivityFloor {
		insights = append(insights, InsightLowRecentActivity)
	}
	if trends.Activity60Days > trends.Activity30Days {
		insights = append(insights, InsightDecliningTrend)
	}
	if len(insights) == 0 {
		return []string{InsightHealthy}
	}
	return insights
}
