package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/fadilmartias/bizsim/internal/util"
)

const scenarioSystemPrompt = "You are an expert instructional designer creating entrepreneurship simulations for West African secondary students. You have vast knowledge of business scenarios, real-world examples, and educational content. Always create unique, diverse scenarios. Always return clean JSON without commentary."

const feedbackSystemPrompt = "You are an expert instructional designer and business mentor. Provide clear, concise, and actionable feedback tailored to the simulation context."

const maxUsedTitlesInPrompt = 10

func scenarioPrompt(ctx Context, used titleSet, perf Performance, attempt int) string {
	uniqueness := "Create a unique, memorable scenario that stands out."
	if len(used) > 0 {
		uniqueness = fmt.Sprintf(`CRITICAL UNIQUENESS REQUIREMENT: You MUST create a completely unique scenario that is DIFFERENT from these previous scenarios: %s.

Do NOT reuse:
- Similar titles or themes
- Similar contexts or situations
- Similar challenges or problems
- Similar stakeholder groups
- Similar constraints

Create something FRESH and UNIQUE. Think of a different industry angle, different problem type, different business challenge. Be creative and diverse.`,
			strings.Join(used.list(maxUsedTitlesInPrompt), ", "))
	}

	average := perf.AverageScore
	if average == 0 {
		average = 65
	}
	strong := strings.Join(perf.StrongSkills, ", ")
	if strong == "" {
		strong = "none noted"
	}
	weak := strings.Join(perf.WeakSkills, ", ")
	if weak == "" {
		weak = "general strategic thinking"
	}
	performance := fmt.Sprintf("The learner previously scored around %d. Strengths: %s. Areas to develop: %s.",
		int(math.Round(average)), strong, weak)

	return fmt.Sprintf(`Design a COMPLETELY UNIQUE entrepreneurship simulation scenario tailored for a Liberian secondary student.

%s

Return ONLY valid JSON with this shape:
{
  "title": string (must be unique and specific, not generic),
  "context": string (detailed, specific situation),
  "situation": string (elaborate on the context with specific details),
  "challenge": string (clear, specific challenge),
  "stakeholders": string[] (4-6 specific stakeholders),
  "constraints": string[] (4-6 specific constraints),
  "success_metrics": string[] (4-6 measurable metrics),
  "estimated_time": number (minutes between 10 and 25),
  "difficulty_level": number (1-5)
}

Make it specific to the following context:
- Industry: %s
- Location: %s
- Business stage: %s
- Resources: budget $%s with team of %d
- Market conditions: %s
- Learner career path: %s
- Learner skill level (0-100): %d
- %s

IMPORTANT:
- Use your vast knowledge to create a scenario that is realistic, relevant to West African context, and educational
- Make the title specific and memorable (e.g., "The Monrovia Market Expansion Dilemma" not "Business Challenge")
- Include specific details about the Liberian/West African business environment
- Ensure stakeholders, constraints, and success metrics are specific to this scenario, not generic
- This is attempt %d - if this is a retry, make it even more unique than before`,
		uniqueness,
		ctx.Industry,
		ctx.Location,
		ctx.BusinessStage,
		util.FormatNumber(ctx.Resources.Budget),
		ctx.Resources.TeamSize,
		ctx.MarketConditions,
		ctx.UserBackground.CareerPath,
		ctx.UserBackground.SkillLevel,
		performance,
		attempt+1,
	)
}

func essayPrompt(r Rand, scenario Scenario, ctx Context) string {
	budget := util.FormatNumber(ctx.Resources.Budget)
	prompts := []string{
		fmt.Sprintf(`Analyze the situation described in "%s" from multiple perspectives. In your essay, address the following:

1. **Situation Analysis**: What are the key challenges and opportunities present in this scenario? Consider both internal and external factors affecting your business.

2. **Stakeholder Impact**: How does this situation affect different stakeholders (%s)? What are their likely concerns and expectations?

3. **Strategic Options**: Evaluate at least three different strategic approaches you could take. What are the pros and cons of each?

4. **Recommended Action**: Based on your analysis, what specific actions would you take and why? Include a timeline and resource allocation.

5. **Risk Management**: What are the potential risks of your chosen approach, and how would you mitigate them?

6. **Success Metrics**: How would you measure the success of your strategy? What key performance indicators would you track?

Consider the unique context of operating in %s within the %s industry, with your background as a %s and current resources of %s budget and %d team members.`,
			scenario.Title, strings.Join(scenario.Stakeholders, ", "),
			ctx.Location, ctx.Industry, ctx.UserBackground.CareerPath, budget, ctx.Resources.TeamSize),
		fmt.Sprintf(`You are facing the challenge described in "%s". Write a comprehensive strategic response that demonstrates your understanding of the business environment and decision-making process.

Your essay should include:

**Executive Summary** (100-150 words): Briefly summarize the situation and your recommended approach.

**Problem Analysis** (200-300 words):
- Identify the core problems and their root causes
- Analyze the constraints: %s
- Consider the market conditions in %s

**Strategic Framework** (250-400 words):
- Apply relevant business frameworks to analyze the situation
- Consider your %s expertise and how it applies
- Evaluate the competitive landscape and market dynamics

**Implementation Plan** (200-300 words):
- Outline specific steps and timeline
- Address resource allocation (budget: %s, team: %d members)
- Define success metrics: %s

**Risk Assessment and Contingency Planning** (150-200 words):
- Identify potential risks and their likelihood
- Develop mitigation strategies
- Create contingency plans for different scenarios

Demonstrate critical thinking, practical application of business principles, and consideration of the unique challenges of operating in the Liberian business environment.`,
			scenario.Title, strings.Join(scenario.Constraints, ", "), ctx.Location,
			ctx.UserBackground.CareerPath, budget, ctx.Resources.TeamSize, strings.Join(scenario.SuccessMetrics, ", ")),
	}
	return pick(r, prompts)
}

func shortAnswerPrompt(r Rand, scenario Scenario, ctx Context) string {
	budget := util.FormatNumber(ctx.Resources.Budget)
	career := ctx.UserBackground.CareerPath
	prompts := []string{
		fmt.Sprintf(`Given the situation in "%s", what would be your primary strategic decision and why?

Consider:
- Your role as a %s
- Available resources (%s budget, %d team members)
- Key stakeholders: %s
- Operating context in %s

Provide a clear decision statement followed by 2-3 key reasons supporting your choice. Focus on practical implementation and expected outcomes.`,
			scenario.Title, career, budget, ctx.Resources.TeamSize, strings.Join(head(scenario.Stakeholders, 3), ", "), ctx.Location),
		fmt.Sprintf(`How would you address the challenge presented in "%s"?

Your response should include:
1. Your specific decision/approach
2. Why this approach is appropriate given the constraints (%s)
3. How you would implement it with your current resources
4. What immediate actions you would take

Keep your response focused and actionable, demonstrating your %s expertise.`,
			scenario.Title, strings.Join(head(scenario.Constraints, 2), ", "), career),
		fmt.Sprintf(`Analyze the situation in "%s" and propose your solution.

Address these key points:
- What is the most critical issue that needs immediate attention?
- What approach would you take and why?
- How does your %s background influence your decision?
- What would be your first three actions?

Provide specific, practical recommendations that can be implemented with your available resources in the %s market.`,
			scenario.Title, career, ctx.Location),
	}
	return pick(r, prompts)
}

func feedbackPrompt(scenario Scenario, option Option, ctx Context, perf Performance) string {
	return fmt.Sprintf(`You are an expert business mentor providing feedback on a student's decision in a business simulation.

Scenario:
Title: %s
Context: %s
Challenge: %s

Selected Option:
%s
Risk level: %s
Immediate consequences: %s
Long term effects: %s

Learner Context:
Career path: %s
Skill level: %d
Business stage: %s
Market conditions: %s
Resources: %s

User performance summary: %s

Provide detailed, personalized feedback. Return ONLY valid JSON (no markdown code blocks, no explanations). The JSON must have this exact structure:
{
  "overall_assessment": "A concise 2-3 sentence assessment of the decision",
  "decision_analysis": {
    "strengths": ["strength 1", "strength 2", "strength 3"],
    "areas_for_improvement": ["area 1", "area 2", "area 3"],
    "alternative_approaches": ["approach 1", "approach 2"]
  },
  "skill_development": {
    "skills_demonstrated": [
      {"skill": "skill name", "level": "beginner|intermediate|advanced", "evidence": "how they demonstrated it"}
    ],
    "skills_to_develop": [
      {"skill": "skill name", "why_important": "reason", "how_to_improve": "actionable advice"}
    ]
  },
  "real_world_examples": [
    {"company": "Company name", "situation": "brief situation", "outcome": "what happened", "lesson": "key takeaway"}
  ],
  "learning_resources": {
    "books": [{"title": "Book Title", "author": "Author", "relevance": "why relevant"}],
    "videos": [{"title": "Video Title", "url": "url", "channel": "Channel", "duration": "duration", "key_topics": ["topic1", "topic2"]}],
    "courses": [{"title": "Course Title", "provider": "Provider", "url": "url", "level": "beginner|intermediate|advanced", "estimated_time": "time"}]
  },
  "action_items": [
    {"task": "specific task", "priority": "high|medium|low", "timeline": "timeframe", "resources_needed": ["resource1", "resource2"]}
  ],
  "reflection_questions": ["question 1", "question 2", "question 3", "question 4"]
}

Make the feedback specific to this decision and context. Keep it concise and actionable.`,
		scenario.Title, scenario.Context, scenario.Challenge,
		option.Text, option.RiskLevel, mustJSON(option.ImmediateConsequences), mustJSON(option.LongTermEffects),
		ctx.UserBackground.CareerPath, ctx.UserBackground.SkillLevel, ctx.BusinessStage, ctx.MarketConditions,
		mustJSON(ctx.Resources), mustJSON(perf),
	)
}

func mustJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
}
