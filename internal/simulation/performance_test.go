package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateUserPerformanceEmpty(t *testing.T) {
	perf := CalculateUserPerformance(nil)
	assert.Equal(t, Performance{AverageScore: 0, StrongSkills: []string{}, WeakSkills: []string{}}, perf)
}

func TestCalculateUserPerformanceAverage(t *testing.T) {
	history := []HistoryEntry{
		{Feedback: HistoryFeedback{OutcomeScore: 80}},
		{Feedback: HistoryFeedback{OutcomeScore: 60}},
		{Feedback: HistoryFeedback{OutcomeScore: 70}},
	}
	assert.InDelta(t, 70, CalculateUserPerformance(history).AverageScore, 1e-9)
}

func TestCalculateUserPerformanceSkills(t *testing.T) {
	history := []HistoryEntry{
		{Feedback: HistoryFeedback{OutcomeScore: 70, SkillsGained: map[string]float64{
			"leadership": 5, "planning": 1, "creativity": 3, "negotiation": 2,
		}}},
		{Feedback: HistoryFeedback{OutcomeScore: 70, SkillsGained: map[string]float64{
			"leadership": 3, "finance": 4,
		}}},
	}

	perf := CalculateUserPerformance(history)
	// averages: leadership 4, finance 4, creativity 3, negotiation 2, planning 1
	assert.Equal(t, []string{"finance", "leadership", "creativity"}, perf.StrongSkills)
	assert.Equal(t, []string{"creativity", "negotiation", "planning"}, perf.WeakSkills)
}

func TestCalculateDifficultyRange(t *testing.T) {
	stages := []BusinessStage{StageStartup, StageGrowth, StageEstablished}
	markets := []string{"stable", "volatile and uncertain"}
	averages := []float64{0, 50, 70, 95}

	for _, stage := range stages {
		for _, market := range markets {
			for _, skill := range []int{0, 40, 100} {
				for _, avg := range averages {
					ctx := Context{BusinessStage: stage, MarketConditions: market, UserBackground: UserBackground{SkillLevel: skill}}
					d := CalculateDifficulty(ctx, &Performance{AverageScore: avg})
					assert.GreaterOrEqual(t, d, 1)
					assert.LessOrEqual(t, d, 5)
				}
			}
		}
	}
}

func TestCalculateDifficultyMonotonicInStageAndPerformance(t *testing.T) {
	established := CalculateDifficulty(Context{BusinessStage: StageEstablished}, &Performance{AverageScore: 90})
	startup := CalculateDifficulty(Context{BusinessStage: StageStartup}, &Performance{AverageScore: 40})
	assert.GreaterOrEqual(t, established, startup)
	assert.Equal(t, 4, established)
	assert.Equal(t, 1, startup)
}

func TestCalculateDifficultyCaps(t *testing.T) {
	ctx := Context{
		BusinessStage:    StageEstablished,
		MarketConditions: "volatile",
		UserBackground:   UserBackground{SkillLevel: 90},
	}
	assert.Equal(t, 5, CalculateDifficulty(ctx, &Performance{AverageScore: 99}))
	assert.Equal(t, 5, CalculateDifficulty(ctx, nil))
}
