package simulation

import (
	"fmt"
	"maps"
	"strings"

	"github.com/fadilmartias/bizsim/internal/util"
)

// GenerateOptions returns the three strategic options of a multiple-choice
// round: aggressive, conservative and innovative, in that order.
func GenerateOptions(r Rand, scenario Scenario, ctx Context) []Option {
	options := make([]Option, 0, len(archetypes))
	for i, a := range archetypes {
		impact := archetypeImpact[a]
		options = append(options, Option{
			ID:                    fmt.Sprintf("option_%d", i+1),
			Text:                  optionText(r, a, scenario),
			Reasoning:             optionReasoning(a, ctx),
			WhyThisMatters:        whyThisMatters(a, scenario, ctx),
			ImmediateConsequences: append([]string(nil), immediateConsequences[a]...),
			LongTermEffects:       append([]string(nil), longTermEffects[a]...),
			SkillDevelopment:      maps.Clone(archetypeSkills[a]),
			RiskLevel:             archetypeRisk[a],
			ResourceImpact: ResourceImpact{
				BudgetChange:    -ctx.Resources.Budget * impact.budgetShare,
				TimeRequired:    impact.timeRequired,
				TeamInvolvement: append([]string(nil), impact.teamInvolvement...),
			},
		})
	}
	return options
}

func optionText(r Rand, a archetype, scenario Scenario) string {
	var texts []string
	switch a {
	case archetypeAggressive:
		texts = []string{
			"Immediately restructure operations to address " + strings.ToLower(scenario.Challenge),
			"Launch an aggressive campaign to counter the current situation",
			"Make bold strategic changes to transform the business model",
		}
	case archetypeInnovative:
		texts = []string{
			"Develop a creative solution that leverages new technology or partnerships",
			"Redesign the approach using innovative methods and user feedback",
			"Explore unconventional strategies that could differentiate your business",
		}
	default:
		texts = []string{
			"Carefully analyze the situation and implement gradual changes",
			"Maintain current operations while making strategic adjustments",
			"Take a measured approach with thorough risk assessment",
		}
	}
	return pick(r, texts)
}

func optionReasoning(a archetype, ctx Context) string {
	switch a {
	case archetypeAggressive:
		return fmt.Sprintf("Given your %s background, taking bold action could leverage your expertise to create significant impact quickly.",
			ctx.UserBackground.CareerPath)
	case archetypeInnovative:
		return fmt.Sprintf("Your industry experience in %s positions you well to identify creative solutions that others might miss.",
			ctx.Industry)
	default:
		return fmt.Sprintf("With current market conditions being %s, a careful approach minimizes risk while maintaining stability.",
			ctx.MarketConditions)
	}
}

func whyThisMatters(a archetype, scenario Scenario, ctx Context) string {
	switch a {
	case archetypeAggressive:
		return fmt.Sprintf("This decision demonstrates your ability to take calculated risks and move quickly when opportunities arise. In %s, being first to market or making bold moves can create significant competitive advantages, especially when you have limited time (%s) and need to show results.",
			ctx.Industry, ctx.Resources.TimeConstraint)
	case archetypeInnovative:
		return fmt.Sprintf("Creative solutions often unlock new revenue streams and differentiate your business in crowded markets. With your %s expertise, this approach leverages your unique perspective to solve %s in ways competitors haven't considered.",
			ctx.UserBackground.CareerPath, strings.ToLower(scenario.Challenge))
	default:
		return fmt.Sprintf("A measured approach protects your limited resources (budget: $%s) and maintains team stability during uncertain times. This strategy is crucial when operating in %s conditions where preserving capital and relationships can determine long-term survival.",
			util.FormatNumber(ctx.Resources.Budget), ctx.MarketConditions)
	}
}

// TextResponseOption stands in for an option when the learner answered a
// free-text task instead of picking one.
func TextResponseOption(resp TaskResponse) Option {
	text := strings.TrimSpace(resp.Response)
	if text == "" {
		text = "Free-text strategic response"
	}
	return Option{
		ID:                    "ai_response",
		Text:                  util.Truncate(text, 100),
		Reasoning:             "User-provided strategic response",
		ImmediateConsequences: []string{"Strategic implementation", "Stakeholder alignment"},
		LongTermEffects:       []string{"Business growth", "Market positioning"},
		SkillDevelopment: map[string]int{
			"strategic_thinking": 3,
			"decision_making":    2,
			"communication":      2,
		},
		RiskLevel: RiskMedium,
		ResourceImpact: ResourceImpact{
			BudgetChange:    0,
			TimeRequired:    "2-4 weeks",
			TeamInvolvement: []string{"management", "operations"},
		},
	}
}
