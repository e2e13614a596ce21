package simulation

import (
	"sort"
	"strings"
)

// CalculateUserPerformance summarises a learner's history: the mean outcome
// score and the top and bottom three skills by mean points gained.
func CalculateUserPerformance(history []HistoryEntry) Performance {
	if len(history) == 0 {
		return Performance{AverageScore: 0, StrongSkills: []string{}, WeakSkills: []string{}}
	}

	var total float64
	points := make(map[string][]float64)
	for _, h := range history {
		total += h.Feedback.OutcomeScore
		for skill, p := range h.Feedback.SkillsGained {
			points[skill] = append(points[skill], p)
		}
	}

	type skillAverage struct {
		skill   string
		average float64
	}
	averages := make([]skillAverage, 0, len(points))
	for skill, ps := range points {
		var sum float64
		for _, p := range ps {
			sum += p
		}
		averages = append(averages, skillAverage{skill: skill, average: sum / float64(len(ps))})
	}
	sort.Slice(averages, func(i, j int) bool {
		if averages[i].average != averages[j].average {
			return averages[i].average > averages[j].average
		}
		return averages[i].skill < averages[j].skill
	})

	strong := make([]string, 0, 3)
	for _, a := range averages[:min(3, len(averages))] {
		strong = append(strong, a.skill)
	}
	weak := make([]string, 0, 3)
	for _, a := range averages[max(0, len(averages)-3):] {
		weak = append(weak, a.skill)
	}

	return Performance{
		AverageScore: total / float64(len(history)),
		StrongSkills: strong,
		WeakSkills:   weak,
	}
}

// CalculateDifficulty derives a 1-5 difficulty from the business stage, the
// learner's skill, market volatility and past performance.
func CalculateDifficulty(ctx Context, perf *Performance) int {
	difficulty := 1

	switch ctx.BusinessStage {
	case StageGrowth:
		difficulty++
	case StageEstablished:
		difficulty += 2
	}
	if ctx.UserBackground.SkillLevel > 50 {
		difficulty++
	}
	if strings.Contains(ctx.MarketConditions, "volatile") {
		difficulty++
	}

	if perf != nil {
		if perf.AverageScore > 80 {
			difficulty++
		}
		if perf.AverageScore < 60 {
			difficulty = max(1, difficulty-1)
		}
	}

	return min(difficulty, 5)
}
