package simulation

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/bizsim/internal/util"
)

const maxExtraTasks = 3

// GenerateTasks builds the tasks of a round: one primary task whose type
// depends on the learner's skill level, then up to three scenario-specific
// tasks picked from those whose keywords match the scenario.
func GenerateTasks(r Rand, scenario Scenario, ctx Context) []Task {
	tasks := []Task{primaryTask(r, scenario, ctx)}
	return append(tasks, scenarioTasks(r, scenario, ctx)...)
}

// TotalPoints is 20 per required task and 10 per optional one.
func TotalPoints(tasks []Task) int {
	total := 0
	for _, t := range tasks {
		if t.Required {
			total += 20
		} else {
			total += 10
		}
	}
	return total
}

func primaryTaskType(r Rand, skillLevel int) TaskType {
	if skillLevel == 0 {
		skillLevel = 20
	}
	switch {
	case skillLevel < 40:
		if r.Float64() < 0.6 {
			return TaskMultipleChoice
		}
		return TaskShortAnswer
	case skillLevel < 80:
		return pick(r, []TaskType{TaskMultipleChoice, TaskShortAnswer, TaskEssay})
	default:
		if r.Float64() < 0.4 {
			return TaskMultipleChoice
		}
		return TaskEssay
	}
}

func primaryTask(r Rand, scenario Scenario, ctx Context) Task {
	switch primaryTaskType(r, ctx.UserBackground.SkillLevel) {
	case TaskMultipleChoice:
		return Task{
			ID:          "strategic_decision",
			Type:        TaskMultipleChoice,
			Title:       "Primary Strategic Response",
			Description: "Choose your main strategic approach to address this crisis. Consider all stakeholders and long-term implications.",
			Required:    true,
			Options:     GenerateOptions(r, scenario, ctx),
		}
	case TaskEssay:
		return Task{
			ID:                 "strategic_analysis",
			Type:               TaskEssay,
			Title:              "Comprehensive Strategic Analysis",
			Description:        "Provide a detailed analysis of the situation and develop a comprehensive strategic response.",
			Prompt:             essayPrompt(r, scenario, ctx),
			Required:           true,
			Constraints:        &TaskConstraints{MinLength: 300, MaxLength: 1500, WordLimit: 750},
			EvaluationCriteria: append([]string(nil), essayCriteria...),
		}
	default:
		return Task{
			ID:                 "strategic_response",
			Type:               TaskShortAnswer,
			Title:              "Strategic Decision Rationale",
			Description:        "Explain your primary strategic decision and the reasoning behind it.",
			Prompt:             shortAnswerPrompt(r, scenario, ctx),
			Required:           true,
			Constraints:        &TaskConstraints{MinLength: 100, MaxLength: 400, WordLimit: 200},
			EvaluationCriteria: append([]string(nil), shortAnswerCriteria...),
		}
	}
}

func anyContains(items []string, subs ...string) bool {
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, sub := range subs {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

func filterContains(items []string, subs ...string) []string {
	var out []string
	for _, item := range items {
		if anyContains([]string{item}, subs...) {
			out = append(out, item)
		}
	}
	return out
}

func head(items []string, n int) []string {
	return items[:min(n, len(items))]
}

func scenarioTasks(r Rand, scenario Scenario, ctx Context) []Task {
	title := strings.ToLower(scenario.Title)
	challenge := strings.ToLower(scenario.Challenge)
	budget := util.FormatNumber(ctx.Resources.Budget)
	var candidates []Task

	if strings.Contains(title, "budget") || strings.Contains(challenge, "budget") || anyContains(scenario.Constraints, "budget") {
		areas := strings.Join(filterContains(scenario.Constraints, "budget", "cost"), ", ")
		if areas == "" {
			areas = "key operational areas"
		}
		candidates = append(candidates, Task{
			ID:          "budget_" + scenario.ID,
			Type:        TaskBudgetAllocation,
			Title:       "Budget Allocation for " + scenario.Title,
			Description: fmt.Sprintf("Given your budget of $%s, allocate funds strategically across: %s. Consider the %s.", budget, areas, scenario.Challenge),
			Required:    true,
			Constraints: &TaskConstraints{BudgetLimit: ctx.Resources.Budget},
		})
	}

	if len(scenario.Stakeholders) >= 2 {
		candidates = append(candidates, Task{
			ID:          "stakeholder_" + scenario.ID,
			Type:        TaskShortAnswer,
			Title:       "Communication Plan for " + strings.Join(head(scenario.Stakeholders, 2), " and "),
			Description: fmt.Sprintf("Draft a communication strategy for %s regarding %s. Address their specific concerns and expectations.", strings.Join(scenario.Stakeholders, ", "), scenario.Challenge),
			Required:    true,
			Constraints: &TaskConstraints{MaxLength: 800},
		})
	}

	if strings.Contains(challenge, "time") || strings.Contains(challenge, "deadline") || ctx.Resources.TimeConstraint != "" {
		candidates = append(candidates, Task{
			ID:          "timeline_" + scenario.ID,
			Type:        TaskShortAnswer,
			Title:       "Implementation Timeline",
			Description: fmt.Sprintf("Create a detailed action plan for addressing %s. Your timeline: %s. Include milestones and key decision points.", scenario.Challenge, ctx.Resources.TimeConstraint),
			Required:    true,
			Constraints: &TaskConstraints{MaxLength: 1000},
		})
	}

	if len(scenario.Constraints) >= 3 || strings.Contains(challenge, "multiple") || strings.Contains(challenge, "competing") {
		candidates = append(candidates, Task{
			ID:          "priorities_" + scenario.ID,
			Type:        TaskPriorityRanking,
			Title:       "Priority Ranking: " + scenario.Title,
			Description: fmt.Sprintf("Rank these response activities in order of priority for addressing %s: %s.", scenario.Challenge, strings.Join(head(scenario.Constraints, 5), ", ")),
			Required:    true,
			Constraints: &TaskConstraints{MaxItems: min(len(scenario.Constraints), 8)},
		})
	}

	if scenario.DifficultyLevel >= 4 || strings.Contains(challenge, "risk") || strings.Contains(challenge, "crisis") {
		candidates = append(candidates, Task{
			ID:          "risk_" + scenario.ID,
			Type:        TaskShortAnswer,
			Title:       "Risk Assessment",
			Description: fmt.Sprintf("Identify potential risks in addressing %s and develop mitigation strategies. Consider: %s.", scenario.Challenge, strings.Join(head(scenario.Constraints, 3), ", ")),
			Required:    true,
			Constraints: &TaskConstraints{MaxLength: 600},
		})
	}

	if ctx.MarketConditions != "" && (strings.Contains(challenge, "market") || strings.Contains(challenge, "competition") || strings.Contains(challenge, "customer")) {
		candidates = append(candidates, Task{
			ID:          "market_" + scenario.ID,
			Type:        TaskShortAnswer,
			Title:       "Market Analysis",
			Description: fmt.Sprintf("Analyze the market conditions (%s) and how they impact your approach to %s.", ctx.MarketConditions, scenario.Challenge),
			Required:    true,
			Constraints: &TaskConstraints{MaxLength: 700},
		})
	}

	if anyContains(scenario.Constraints, "resource", "limited") {
		candidates = append(candidates, Task{
			ID:          "resources_" + scenario.ID,
			Type:        TaskShortAnswer,
			Title:       "Resource Optimization",
			Description: fmt.Sprintf("With limited resources (budget: $%s, team: %d), how will you optimize your approach to %s?", budget, ctx.Resources.TeamSize, scenario.Challenge),
			Required:    true,
			Constraints: &TaskConstraints{MaxLength: 600},
		})
	}

	if len(scenario.SuccessMetrics) > 0 {
		candidates = append(candidates, Task{
			ID:          "metrics_" + scenario.ID,
			Type:        TaskShortAnswer,
			Title:       "Success Metrics & KPIs",
			Description: fmt.Sprintf("Define how you'll measure success for %s. Consider: %s.", scenario.Title, strings.Join(head(scenario.SuccessMetrics, 3), ", ")),
			Required:    true,
			Constraints: &TaskConstraints{MaxLength: 500},
		})
	}

	if len(candidates) == 0 {
		return []Task{
			{
				ID:          "budget_" + scenario.ID,
				Type:        TaskBudgetAllocation,
				Title:       "Budget Allocation",
				Description: fmt.Sprintf("Allocate your $%s budget across key areas to address %s.", budget, scenario.Challenge),
				Required:    true,
				Constraints: &TaskConstraints{BudgetLimit: ctx.Resources.Budget},
			},
			{
				ID:          "action_" + scenario.ID,
				Type:        TaskShortAnswer,
				Title:       "Action Plan",
				Description: fmt.Sprintf("Create an action plan for %s. Include specific steps and timelines.", scenario.Title),
				Required:    true,
				Constraints: &TaskConstraints{MaxLength: 800},
			},
		}
	}

	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:min(maxExtraTasks, len(candidates))]
}

// AIContext is the one-line framing shown above a round.
func AIContext(scenario Scenario, ctx Context) string {
	difficulty := "straightforward"
	switch {
	case scenario.DifficultyLevel >= 4:
		difficulty = "challenging"
	case scenario.DifficultyLevel >= 3:
		difficulty = "moderate"
	}
	career := ctx.UserBackground.CareerPath
	if career == "" {
		career = "entrepreneur"
	}
	return fmt.Sprintf("This %s scenario tests your %s skills. Consider all stakeholders and long-term impacts when deciding.", difficulty, career)
}

func LearningObjectives(ctx Context) []string {
	return []string{
		fmt.Sprintf("Develop %s decision-making skills", ctx.UserBackground.CareerPath),
		"Learn to balance stakeholder interests in complex situations",
		"Practice resource allocation under constraints",
		"Understand long-term consequences of strategic decisions",
	}
}
