package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkloadScore(t *testing.T) {
	tests := []struct {
		appointments int
		want         int
	}{
		{0, 25},
		{1, 20},
		{2, 20},
		{3, 15},
		{4, 15},
		{5, 10},
		{6, 10},
		{7, 5},
		{20, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WorkloadScore(tt.appointments), "appointments=%d", tt.appointments)
	}
}

func TestSpecializationScore(t *testing.T) {
	tests := []struct {
		completed int
		want      int
	}{
		{0, 0},
		{1, 0},
		{2, 10},
		{4, 10},
		{5, 15},
		{9, 15},
		{10, 20},
		{50, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SpecializationScore(tt.completed), "completed=%d", tt.completed)
	}
}

func TestCustomerHistoryScore(t *testing.T) {
	tests := []struct {
		completed int
		want      int
	}{
		{0, 0},
		{1, 10},
		{2, 10},
		{3, 15},
		{4, 15},
		{5, 20},
		{10, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CustomerHistoryScore(tt.completed), "completed=%d", tt.completed)
	}
}

func TestPerformanceScore(t *testing.T) {
	tests := []struct {
		name  string
		stats StaffCompletionStats
		want  int
	}{
		{name: "new staff gets default", stats: StaffCompletionStats{}, want: 10},
		{name: "excellent", stats: StaffCompletionStats{Completed: 19, NonCancelled: 20}, want: 20},
		{name: "good", stats: StaffCompletionStats{Completed: 18, NonCancelled: 20}, want: 15},
		{name: "fair", stats: StaffCompletionStats{Completed: 16, NonCancelled: 20}, want: 10},
		{name: "poor", stats: StaffCompletionStats{Completed: 10, NonCancelled: 20}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PerformanceScore(tt.stats))
		})
	}
}

func TestRecentCompletionScore(t *testing.T) {
	tests := []struct {
		name  string
		stats StaffCompletionStats
		want  int
	}{
		{name: "no recent data gets default", stats: StaffCompletionStats{}, want: 10},
		{name: "excellent", stats: StaffCompletionStats{Completed: 9, NonCancelled: 10}, want: 15},
		{name: "good", stats: StaffCompletionStats{Completed: 8, NonCancelled: 10}, want: 10},
		{name: "fair", stats: StaffCompletionStats{Completed: 5, NonCancelled: 10}, want: 5},
		{name: "poor", stats: StaffCompletionStats{Completed: 4, NonCancelled: 10}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecentCompletionScore(tt.stats))
		})
	}
}

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{-10, RiskLevelLow},
		{0, RiskLevelLow},
		{29, RiskLevelLow},
		{30, RiskLevelMedium},
		{59, RiskLevelMedium},
		{60, RiskLevelHigh},
		{100, RiskLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelFromScore(tt.score), "score=%d", tt.score)
	}
}

func TestRiskRecommendations_EveryLevelCovered(t *testing.T) {
	for _, level := range []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh} {
		assert.NotEmpty(t, RiskRecommendations[level], "level=%s", level)
	}
}
