package simulation

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/bizsim/internal/util"
)

// titleSet holds lower-cased scenario titles.
type titleSet map[string]struct{}

func newTitleSet(titles ...[]string) titleSet {
	s := titleSet{}
	for _, group := range titles {
		for _, t := range group {
			if t = strings.TrimSpace(t); t != "" {
				s[strings.ToLower(t)] = struct{}{}
			}
		}
	}
	return s
}

func (s titleSet) has(title string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(title))]
	return ok
}

func (s titleSet) list(limit int) []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

const titleVariationTries = 8

// scenarioFromTemplate builds a scenario from the stage's template table,
// preferring templates whose title has not been used and a flavoured title
// that is not excluded either.
func scenarioFromTemplate(r Rand, ctx Context, used titleSet, perf Performance) Scenario {
	templates := templatesFor(ctx.BusinessStage)

	available := make([]scenarioTemplate, 0, len(templates))
	for _, t := range templates {
		if !used.has(t.Title) {
			available = append(available, t)
		}
	}

	var selected scenarioTemplate
	if len(available) > 0 {
		selected = pick(r, available)
	} else {
		selected = pick(r, templates)
	}

	title := careerTitle(r, selected.Title, ctx.UserBackground.CareerPath)
	for i := 0; i < titleVariationTries && used.has(title); i++ {
		title = careerTitle(r, selected.Title, ctx.UserBackground.CareerPath)
	}

	return Scenario{
		ID:              NewScenarioID(),
		Title:           title,
		Context:         fmt.Sprintf("%s Your %s background gives you unique insights into this situation.", selected.Context, ctx.UserBackground.CareerPath),
		Situation:       situation(r, ctx, perf),
		Challenge:       selected.Challenge,
		Stakeholders:    append([]string(nil), selected.Stakeholders...),
		Constraints:     append([]string(nil), selected.Constraints...),
		SuccessMetrics:  append([]string(nil), selected.SuccessMetrics...),
		DifficultyLevel: CalculateDifficulty(ctx, &perf),
		EstimatedTime:   10 + r.IntN(10),
	}
}

func situation(r Rand, ctx Context, perf Performance) string {
	situations := []string{
		fmt.Sprintf("In %s, your %s business faces this challenge during %s market conditions.",
			ctx.Location, ctx.Industry, ctx.MarketConditions),
		fmt.Sprintf("With a team of %d and a budget of $%s, you must navigate this situation.",
			ctx.Resources.TeamSize, util.FormatNumber(ctx.Resources.Budget)),
		fmt.Sprintf("Given your %s expertise and current skill level, this scenario tests your decision-making abilities.",
			ctx.UserBackground.CareerPath),
	}

	if perf.AverageScore > 80 && len(perf.StrongSkills) > 0 {
		situations = append(situations, fmt.Sprintf(
			"Your previous strong performance in %s positions you well for this advanced challenge.",
			strings.Join(perf.StrongSkills, " and ")))
	} else if perf.AverageScore < 60 && len(perf.WeakSkills) > 0 {
		situations = append(situations, fmt.Sprintf(
			"This scenario provides an opportunity to develop your %s skills further.",
			strings.Join(perf.WeakSkills, " and ")))
	}
	if len(perf.WeakSkills) > 0 {
		situations = append(situations, fmt.Sprintf(
			"Focus on applying %s principles as you work through this situation.", perf.WeakSkills[0]))
	}

	return pick(r, situations)
}
