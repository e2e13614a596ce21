package simulation

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/service"
	"github.com/fadilmartias/bizsim/internal/util"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var feedbackSchema = service.MustSchema("feedback", `{
  "type": "object",
  "required": ["overall_assessment"],
  "properties": {
    "overall_assessment": {"type": "string", "minLength": 1},
    "decision_analysis": {
      "type": "object",
      "properties": {
        "strengths": {"type": "array", "items": {"type": "string"}},
        "areas_for_improvement": {"type": "array", "items": {"type": "string"}},
        "alternative_approaches": {"type": "array", "items": {"type": "string"}}
      }
    },
    "skill_development": {
      "type": "object",
      "properties": {
        "skills_demonstrated": {"type": "array", "items": {"type": "object", "required": ["skill"], "properties": {"skill": {"type": "string"}, "level": {"type": "string"}, "evidence": {"type": "string"}}}},
        "skills_to_develop": {"type": "array", "items": {"type": "object", "required": ["skill"], "properties": {"skill": {"type": "string"}, "why_important": {"type": "string"}, "how_to_improve": {"type": "string"}}}}
      }
    },
    "real_world_examples": {"type": "array", "items": {"type": "object", "properties": {"company": {"type": "string"}, "situation": {"type": "string"}, "outcome": {"type": "string"}, "lesson": {"type": "string"}}}},
    "learning_resources": {
      "type": "object",
      "properties": {
        "books": {"type": "array", "items": {"type": "object", "properties": {"title": {"type": "string"}, "author": {"type": "string"}, "relevance": {"type": "string"}, "key_chapters": {"type": "array", "items": {"type": "string"}}}}},
        "articles": {"type": "array", "items": {"type": "object", "properties": {"title": {"type": "string"}, "url": {"type": "string"}, "source": {"type": "string"}, "summary": {"type": "string"}}}},
        "videos": {"type": "array", "items": {"type": "object", "properties": {"title": {"type": "string"}, "url": {"type": "string"}, "channel": {"type": "string"}, "duration": {"type": "string"}, "key_topics": {"type": "array", "items": {"type": "string"}}}}},
        "courses": {"type": "array", "items": {"type": "object", "properties": {"title": {"type": "string"}, "provider": {"type": "string"}, "url": {"type": "string"}, "level": {"type": "string"}, "estimated_time": {"type": "string"}}}}
      }
    },
    "action_items": {"type": "array", "items": {"type": "object", "properties": {"task": {"type": "string"}, "priority": {"type": "string"}, "timeline": {"type": "string"}, "resources_needed": {"type": "array", "items": {"type": "string"}}}}},
    "reflection_questions": {"type": "array", "items": {"type": "string"}}
  }
}`)

const (
	feedbackTemperature = 0.8
	feedbackMaxTokens   = 2000
)

// ExampleSource finds real-world examples relevant to a decision, such as
// stored case studies ranked by embedding distance.
type ExampleSource interface {
	Examples(ctx context.Context, scenario Scenario, option Option, stage BusinessStage) ([]RealWorldExample, error)
}

type FeedbackGenerator struct {
	provider    service.Provider
	examples    ExampleSource
	rng         Rand
	callTimeout time.Duration
}

// NewFeedbackGenerator returns a generator. provider and examples may be nil.
func NewFeedbackGenerator(provider service.Provider, examples ExampleSource, rng Rand, callTimeout time.Duration) *FeedbackGenerator {
	if rng == nil {
		rng = DefaultRand
	}
	return &FeedbackGenerator{provider: provider, examples: examples, rng: rng, callTimeout: callTimeout}
}

// Generate returns mentor feedback for option. Sections the model reply
// leaves empty, or that do not decode, are filled from templates. A reply
// that is not JSON becomes the overall assessment. Without a model, or when
// the call fails, the feedback is composed from templates.
func (g *FeedbackGenerator) Generate(ctx context.Context, scenario Scenario, option Option, simCtx Context, history []HistoryEntry) Feedback {
	if g.provider == nil {
		return g.fill(ctx, Feedback{}, scenario, option, simCtx)
	}

	callCtx := ctx
	if g.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.callTimeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(callCtx, service.Request{
		System:      feedbackSystemPrompt,
		Prompt:      feedbackPrompt(scenario, option, simCtx, CalculateUserPerformance(history)),
		Schema:      feedbackSchema,
		MaxTokens:   feedbackMaxTokens,
		Temperature: feedbackTemperature,
	})
	if err != nil {
		if raw, ok := service.RawContent(err); ok {
			logger.Log.Info("feedback reply failed validation, decoding what it carries", zap.Error(err))
			return g.fill(ctx, decodeFeedback(util.StripCodeFences(raw)), scenario, option, simCtx)
		}
		logger.Log.Warn("model feedback failed, falling back to templates", zap.Error(err))
		return g.fill(ctx, Feedback{}, scenario, option, simCtx)
	}

	var fb Feedback
	if err := json.Unmarshal([]byte(resp.Content), &fb); err != nil {
		logger.Log.Warn("decode model feedback", zap.Error(err))
		fb = decodeFeedback(resp.Content)
	}
	return g.fill(ctx, fb, scenario, option, simCtx)
}

// decodeFeedback reads a reply that did not pass the schema. A JSON object
// keeps every section that decodes on its own; any other text is the
// overall assessment.
func decodeFeedback(text string) Feedback {
	text = strings.TrimSpace(text)
	if !gjson.Valid(text) {
		return Feedback{OverallAssessment: text}
	}
	doc := gjson.Parse(text)
	if !doc.IsObject() {
		return Feedback{OverallAssessment: text}
	}

	return Feedback{
		OverallAssessment: strings.TrimSpace(doc.Get("overall_assessment").String()),
		DecisionAnalysis: DecisionAnalysis{
			Strengths:             section[[]string](doc, "decision_analysis.strengths"),
			AreasForImprovement:   section[[]string](doc, "decision_analysis.areas_for_improvement"),
			AlternativeApproaches: section[[]string](doc, "decision_analysis.alternative_approaches"),
		},
		SkillDevelopment: SkillDevelopment{
			SkillsDemonstrated: section[[]SkillDemonstrated](doc, "skill_development.skills_demonstrated"),
			SkillsToDevelop:    section[[]SkillToDevelop](doc, "skill_development.skills_to_develop"),
		},
		RealWorldExamples: section[[]RealWorldExample](doc, "real_world_examples"),
		LearningResources: LearningResources{
			Books:    section[[]Book](doc, "learning_resources.books"),
			Articles: section[[]Article](doc, "learning_resources.articles"),
			Videos:   section[[]Video](doc, "learning_resources.videos"),
			Courses:  section[[]Course](doc, "learning_resources.courses"),
		},
		ActionItems:         section[[]ActionItem](doc, "action_items"),
		ReflectionQuestions: section[[]string](doc, "reflection_questions"),
	}
}

// section decodes the value at path, or returns the zero value when it is
// missing or has the wrong shape.
func section[T any](doc gjson.Result, path string) T {
	var v T
	r := doc.Get(path)
	if !r.Exists() {
		return v
	}
	if err := json.Unmarshal([]byte(r.Raw), &v); err != nil {
		logger.Log.Debug("dropping malformed feedback section", zap.String("section", path), zap.Error(err))
		var zero T
		return zero
	}
	return v
}

// fill completes the empty sections of fb from templates. Case studies are
// only looked up when the reply brought no examples.
func (g *FeedbackGenerator) fill(ctx context.Context, fb Feedback, scenario Scenario, option Option, simCtx Context) Feedback {
	career := simCtx.UserBackground.CareerPath
	if strings.TrimSpace(fb.OverallAssessment) == "" {
		fb.OverallAssessment = overallAssessment(g.rng, option, career)
	}
	if len(fb.DecisionAnalysis.Strengths) == 0 && len(fb.DecisionAnalysis.AreasForImprovement) == 0 && len(fb.DecisionAnalysis.AlternativeApproaches) == 0 {
		fb.DecisionAnalysis = decisionAnalysis(option, scenario, simCtx)
	}
	if len(fb.SkillDevelopment.SkillsDemonstrated) == 0 && len(fb.SkillDevelopment.SkillsToDevelop) == 0 {
		fb.SkillDevelopment = skillDevelopment(option, career)
	}
	if len(fb.RealWorldExamples) == 0 {
		fb.RealWorldExamples = g.realWorldExamples(ctx, scenario, option)
	}
	if len(fb.LearningResources.Books) == 0 && len(fb.LearningResources.Videos) == 0 && len(fb.LearningResources.Courses) == 0 {
		fb.LearningResources = learningResources(career)
	}
	if len(fb.ActionItems) == 0 {
		fb.ActionItems = actionItems()
	}
	if len(fb.ReflectionQuestions) == 0 {
		fb.ReflectionQuestions = reflectionQuestions()
	}
	return fb
}

func (g *FeedbackGenerator) realWorldExamples(ctx context.Context, scenario Scenario, option Option) []RealWorldExample {
	if g.examples != nil {
		found, err := g.examples.Examples(ctx, scenario, option, exampleStage(scenario))
		if err != nil {
			logger.Log.Warn("case study lookup failed", zap.Error(err))
		} else if len(found) > 0 {
			return found[:min(2, len(found))]
		}
	}
	return cannedExamples(scenario, option)
}

// GenerateResult scores a decision and assembles the round's full outcome.
func (g *FeedbackGenerator) GenerateResult(ctx context.Context, scenario Scenario, option Option, simCtx Context, history []HistoryEntry) Result {
	score := PerformanceScore(g.rng, option, simCtx)
	tier := scoreTier(score)

	return Result{
		SelectedOption:     option,
		OutcomeDescription: pick(g.rng, outcomeDescriptions[tier]),
		Consequences: Consequences{
			Immediate: option.ImmediateConsequences,
			ShortTerm: head(shortTermConsequences, 2),
			LongTerm:  option.LongTermEffects,
		},
		SkillGains:          SkillGains(option, simCtx.UserBackground.CareerPath),
		PerformanceScore:    score,
		AIFeedback:          g.Generate(ctx, scenario, option, simCtx, history),
		NextScenarioContext: nextScenarioContexts[tier],
		Summary:             DeterministicFeedback(scenario, option, simCtx.UserBackground.CareerPath, simCtx.Location),
	}
}

// PerformanceScore rates how well the option's risk suits the business stage,
// plus or minus up to ten points of variance, within 0..100.
func PerformanceScore(r Rand, option Option, ctx Context) int {
	score := 70
	switch {
	case option.RiskLevel == RiskMedium:
		score += 10
	case option.RiskLevel == RiskHigh && ctx.BusinessStage == StageStartup:
		score += 15
	case option.RiskLevel == RiskLow && ctx.BusinessStage == StageEstablished:
		score += 10
	}
	budgetChange := option.ResourceImpact.BudgetChange
	if budgetChange < 0 {
		budgetChange = -budgetChange
	}
	if budgetChange < ctx.Resources.Budget*0.2 {
		score += 5
	}
	score += r.IntN(21) - 10
	return clamp(score, 0, 100)
}

// OutcomeScore is the score recorded with a decision:
// 70, -5 for high risk or +5 for low, +3 per round up to 12, and a variance
// of -3..+6, kept within 55..100.
func OutcomeScore(r Rand, option Option, round int) int {
	score := 70
	switch option.RiskLevel {
	case RiskHigh:
		score -= 5
	case RiskLow:
		score += 5
	}
	score += min(round*3, 12)
	score += r.IntN(10) - 3
	return clamp(score, 55, 100)
}

// SkillGains merges the option's skills with the career's, the career
// values winning on overlap.
func SkillGains(option Option, careerPath string) map[string]int {
	gains := make(map[string]int, len(option.SkillDevelopment)+3)
	maps.Copy(gains, option.SkillDevelopment)
	maps.Copy(gains, lookupCareer(careerSkillGains, careerPath))
	return gains
}

// DeterministicFeedback is a short mentor message built only from the
// decision itself.
func DeterministicFeedback(scenario Scenario, option Option, careerPath, location string) string {
	if strings.TrimSpace(option.Text) == "" {
		role := "LEADERSHIP"
		if careerPath != "" {
			role = strings.ToUpper(careerPath)
		}
		return fmt.Sprintf("Thoughtful move. As a %s, consider stakeholders, execution risks, and local market dynamics to strengthen your next decision.", role)
	}

	role := careerPath
	if role == "" {
		role = "entrepreneur"
	}
	if location == "" {
		location = "your market"
		if strings.Contains(scenario.Context, "Liberia") {
			location = "Liberia"
		}
	}
	difficulty := "current"
	if scenario.DifficultyLevel > 0 {
		difficulty = fmt.Sprintf("level %d", scenario.DifficultyLevel)
	}

	skills := sortedSkillKeys(option.SkillDevelopment)
	primary := "strategic thinking"
	if len(skills) > 0 {
		primary = util.Humanize(skills[0])
	}
	risk := string(option.RiskLevel)
	if risk == "" {
		risk = string(RiskMedium)
	}

	budget := option.ResourceImpact.BudgetChange
	budgetText := "neutral budget impact"
	switch {
	case budget > 0:
		budgetText = "budget increase of +" + strconv.FormatFloat(budget, 'f', -1, 64)
	case budget < 0:
		budgetText = "budget relief of " + strconv.FormatFloat(budget, 'f', -1, 64)
	}

	followUp := fmt.Sprintf("Focus on deepening %s through measurable milestones to amplify results.", primary)
	if len(skills) > 1 {
		others := make([]string, 0, len(skills)-1)
		for _, s := range skills[1:] {
			others = append(others, util.Humanize(s))
		}
		followUp = fmt.Sprintf("You also touch on %s, which can compound outcomes if supported by clear execution.", strings.Join(others, ", "))
	}

	return strings.Join([]string{
		fmt.Sprintf("Good judgment for a %s navigating %s.", role, location),
		fmt.Sprintf("Your choice at %s difficulty emphasizes %s with %s risk and %s.", difficulty, primary, risk, budgetText),
		followUp,
		fmt.Sprintf("Next step: outline a 2-3 item action plan (owners, timeline) to validate this decision in the %s context.", location),
	}, " ")
}

// sortedSkillKeys orders skills by points, highest first, then by name.
func sortedSkillKeys(skills map[string]int) []string {
	keys := slices.Collect(maps.Keys(skills))
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(skills[b], skills[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return keys
}
