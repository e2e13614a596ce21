package simulation

import (
	"fmt"
	"strings"
)

func overallAssessment(r Rand, option Option, careerPath string) string {
	assessments := map[RiskLevel][]string{
		RiskLow: {
			fmt.Sprintf("Your conservative approach demonstrates strong risk management skills, which is crucial for %s roles. This decision shows you prioritize stability and sustainable growth over quick wins.", careerPath),
			fmt.Sprintf("You've chosen a measured approach that aligns well with best practices in %s. This shows maturity in decision-making and understanding of long-term consequences.", careerPath),
		},
		RiskMedium: {
			fmt.Sprintf("Your balanced approach shows good judgment in weighing risks against potential rewards. This is exactly the kind of strategic thinking expected from a %s.", careerPath),
			fmt.Sprintf("You've struck a good balance between innovation and prudence. This decision demonstrates the analytical skills essential for %s success.", careerPath),
		},
		RiskHigh: {
			"Your bold decision shows entrepreneurial courage and willingness to take calculated risks. While risky, this approach could lead to significant breakthroughs if executed well.",
			"You've chosen an aggressive strategy that could differentiate your business. This shows the kind of innovative thinking that drives industry leadership.",
		},
	}
	options, ok := assessments[option.RiskLevel]
	if !ok {
		options = assessments[RiskMedium]
	}
	return pick(r, options)
}

func decisionAnalysis(option Option, scenario Scenario, ctx Context) DecisionAnalysis {
	return DecisionAnalysis{
		Strengths:             strengths(option, scenario, ctx),
		AreasForImprovement:   improvementAreas(option),
		AlternativeApproaches: alternatives(),
	}
}

func strengths(option Option, scenario Scenario, ctx Context) []string {
	var out []string
	switch option.RiskLevel {
	case RiskLow:
		out = append(out,
			"Demonstrated strong risk management by choosing a conservative approach",
			"Prioritized business stability and stakeholder confidence")
	case RiskHigh:
		out = append(out,
			"Showed entrepreneurial courage and willingness to innovate",
			"Recognized the potential for significant competitive advantage")
	}
	if ctx.BusinessStage == StageStartup {
		out = append(out, "Considered the unique constraints and opportunities of a startup environment")
	}
	if len(scenario.Stakeholders) > 3 {
		out = append(out, "Navigated a complex stakeholder environment effectively")
	}
	return head(out, 3)
}

func improvementAreas(option Option) []string {
	var out []string
	switch option.RiskLevel {
	case RiskHigh:
		out = append(out,
			"Consider developing more detailed risk mitigation strategies for high-risk decisions",
			"Explore ways to test assumptions before full implementation")
	case RiskLow:
		out = append(out,
			"Look for opportunities to be more innovative while maintaining prudent risk management",
			"Consider how to accelerate growth while preserving stability")
	}
	if option.ResourceImpact.BudgetChange < -1000 {
		out = append(out, "Develop more cost-effective approaches to achieve similar outcomes")
	}
	out = append(out, "Enhance stakeholder communication and buy-in strategies")
	return head(out, 3)
}

func alternatives() []string {
	return head([]string{
		"Implement a phased approach to reduce risk while maintaining innovation potential",
		"Develop partnerships to share resources and risks",
		"Create pilot programs to test concepts before full-scale implementation",
		"Establish clear success metrics and decision checkpoints for course correction",
	}, 2)
}

// skillName renders the first underscore of a skill key as a space.
func skillName(skill string) string {
	return strings.Replace(skill, "_", " ", 1)
}

func skillDevelopment(option Option, careerPath string) SkillDevelopment {
	skills := lookupCareer(careerSkills, careerPath)

	level := "intermediate"
	if option.RiskLevel == RiskHigh {
		level = "advanced"
	}

	var dev SkillDevelopment
	for _, skill := range skills[:2] {
		name := skillName(skill)
		dev.SkillsDemonstrated = append(dev.SkillsDemonstrated, SkillDemonstrated{
			Skill:    name,
			Level:    level,
			Evidence: fmt.Sprintf("Your decision to %s demonstrates practical application of %s principles", strings.ToLower(option.Text), name),
		})
	}
	for _, skill := range skills[2:4] {
		name := skillName(skill)
		dev.SkillsToDevelop = append(dev.SkillsToDevelop, SkillToDevelop{
			Skill:        name,
			WhyImportant: fmt.Sprintf("%s is crucial for %s success in today's business environment", name, careerPath),
			HowToImprove: fmt.Sprintf("Practice %s through case studies, mentorship, and hands-on projects", name),
		})
	}
	return dev
}

var stageExamples = map[BusinessStage][]RealWorldExample{
	StageStartup: {
		{
			Company:   "Airbnb",
			Situation: "Faced regulatory challenges in multiple cities while trying to scale",
			Outcome:   "Developed city-specific compliance strategies and stakeholder engagement",
			Lesson:    "Proactive regulatory engagement is crucial for platform businesses",
		},
		{
			Company:   "Slack",
			Situation: "Pivoted from gaming company to communication platform during financial crisis",
			Outcome:   "Became one of the fastest-growing business applications",
			Lesson:    "Sometimes the best opportunities come from unexpected pivots",
		},
	},
	StageGrowth: {
		{
			Company:   "Netflix",
			Situation: "Transitioned from DVD-by-mail to streaming while cannibalizing existing business",
			Outcome:   "Became the dominant streaming platform globally",
			Lesson:    "Bold strategic moves sometimes require sacrificing current success for future growth",
		},
		{
			Company:   "Shopify",
			Situation: "Scaled platform while maintaining performance and adding new features",
			Outcome:   "Became the leading e-commerce platform for small businesses",
			Lesson:    "Technical excellence and customer focus enable sustainable scaling",
		},
	},
}

// exampleStage reads the stage from the scenario title, defaulting to startup.
func exampleStage(scenario Scenario) BusinessStage {
	title := strings.ToLower(scenario.Title)
	if !strings.Contains(title, "startup") && strings.Contains(title, "growth") {
		return StageGrowth
	}
	return StageStartup
}

// cannedExamples selects two examples, varied by the length of the option text.
func cannedExamples(scenario Scenario, option Option) []RealWorldExample {
	examples := stageExamples[exampleStage(scenario)]
	idx := len(option.Text) % len(examples)
	return []RealWorldExample{examples[idx], examples[(idx+1)%len(examples)]}
}

var baseResources = LearningResources{
	Books: []Book{
		{
			Title:       "The Lean Startup",
			Author:      "Eric Ries",
			Relevance:   "Essential for understanding iterative business development and risk management",
			KeyChapters: []string{"Build-Measure-Learn", "Validated Learning"},
		},
		{
			Title:       "Good to Great",
			Author:      "Jim Collins",
			Relevance:   "Provides frameworks for sustainable business growth and leadership",
			KeyChapters: []string{"Level 5 Leadership", "The Hedgehog Concept"},
		},
	},
	Articles: []Article{
		{
			Title:   "The Hard Thing About Hard Things",
			URL:     "https://a16z.com/2014/05/09/the-hard-thing-about-hard-things/",
			Source:  "Andreessen Horowitz",
			Summary: "Practical advice for navigating difficult business decisions",
		},
		{
			Title:   "Blitzscaling: The Lightning-Fast Path to Building Massively Valuable Companies",
			URL:     "https://hbr.org/2016/04/blitzscaling",
			Source:  "Harvard Business Review",
			Summary: "Strategies for rapid scaling in competitive markets",
		},
	},
	Videos: []Video{
		{
			Title:     "How to Build Your Startup",
			URL:       "https://www.youtube.com/watch?v=CVfnkM44Urs",
			Channel:   "Stanford eCorner",
			Duration:  "45 minutes",
			KeyTopics: []string{"Product-Market Fit", "Team Building", "Fundraising"},
		},
		{
			Title:     "The Single Biggest Reason Why Startups Succeed",
			URL:       "https://www.youtube.com/watch?v=bNpx7gpSqbY",
			Channel:   "TED",
			Duration:  "6 minutes",
			KeyTopics: []string{"Timing", "Market Analysis", "Execution"},
		},
	},
	Courses: []Course{
		{
			Title:         "Entrepreneurship Specialization",
			Provider:      "Coursera (University of Pennsylvania)",
			URL:           "https://www.coursera.org/specializations/wharton-entrepreneurship",
			Level:         "intermediate",
			EstimatedTime: "4-6 months",
		},
		{
			Title:         "Strategic Leadership and Management",
			Provider:      "edX (MIT)",
			URL:           "https://www.edx.org/course/strategic-leadership",
			Level:         "advanced",
			EstimatedTime: "8-10 weeks",
		},
	},
}

var careerResources = map[string]LearningResources{
	"cto": {
		Books: []Book{{
			Title:       "The Technology Fallacy",
			Author:      "Gerald Kane",
			Relevance:   "Understanding technology's role in business strategy",
			KeyChapters: []string{"Digital Transformation", "Technology Leadership"},
		}},
		Articles: []Article{{
			Title:   "What Makes a Great CTO",
			URL:     "https://firstround.com/review/what-makes-a-great-cto/",
			Source:  "First Round Review",
			Summary: "Key competencies and responsibilities of technical leaders",
		}},
		Videos: []Video{{
			Title:     "Building Technical Teams",
			URL:       "https://www.youtube.com/watch?v=technical-teams",
			Channel:   "Tech Leadership",
			Duration:  "30 minutes",
			KeyTopics: []string{"Hiring", "Team Culture", "Technical Vision"},
		}},
		Courses: []Course{{
			Title:         "Technical Leadership",
			Provider:      "Pluralsight",
			URL:           "https://www.pluralsight.com/courses/technical-leadership",
			Level:         "advanced",
			EstimatedTime: "6 weeks",
		}},
	},
	"marketing": {
		Books: []Book{{
			Title:       "Building a StoryBrand",
			Author:      "Donald Miller",
			Relevance:   "Creating clear marketing messages that resonate",
			KeyChapters: []string{"The StoryBrand Framework", "Customer Journey"},
		}},
		Articles: []Article{{
			Title:   "The Future of Marketing",
			URL:     "https://hbr.org/2020/01/marketing-in-the-age-of-alexa",
			Source:  "Harvard Business Review",
			Summary: "How technology is changing marketing strategies",
		}},
		Videos: []Video{{
			Title:     "Digital Marketing Strategy",
			URL:       "https://www.youtube.com/watch?v=digital-marketing",
			Channel:   "Marketing School",
			Duration:  "25 minutes",
			KeyTopics: []string{"SEO", "Content Marketing", "Social Media"},
		}},
		Courses: []Course{{
			Title:         "Digital Marketing Specialization",
			Provider:      "Coursera (University of Illinois)",
			URL:           "https://www.coursera.org/specializations/digital-marketing",
			Level:         "intermediate",
			EstimatedTime: "3-4 months",
		}},
	},
}

func concatHead[T any](a, b []T, n int) []T {
	out := append(append([]T(nil), a...), b...)
	return out[:min(n, len(out))]
}

func learningResources(careerPath string) LearningResources {
	extra := careerResources[careerKey(careerPath)]
	return LearningResources{
		Books:    concatHead(baseResources.Books, extra.Books, 3),
		Articles: concatHead(baseResources.Articles, extra.Articles, 3),
		Videos:   concatHead(baseResources.Videos, extra.Videos, 3),
		Courses:  concatHead(baseResources.Courses, extra.Courses, 2),
	}
}

func actionItems() []ActionItem {
	items := []ActionItem{
		{
			Task:            "Create a detailed implementation plan with milestones and success metrics",
			Priority:        "high",
			Timeline:        "1 week",
			ResourcesNeeded: []string{"team input", "market research", "financial projections"},
		},
		{
			Task:            "Identify and engage key stakeholders for buy-in and support",
			Priority:        "high",
			Timeline:        "2 weeks",
			ResourcesNeeded: []string{"stakeholder mapping", "communication plan", "presentation materials"},
		},
		{
			Task:            "Develop risk mitigation strategies for potential challenges",
			Priority:        "medium",
			Timeline:        "1 week",
			ResourcesNeeded: []string{"risk assessment framework", "contingency planning", "expert consultation"},
		},
		{
			Task:            "Set up monitoring and feedback systems to track progress",
			Priority:        "medium",
			Timeline:        "2 weeks",
			ResourcesNeeded: []string{"analytics tools", "reporting dashboard", "feedback mechanisms"},
		},
	}
	return items[:3]
}

func reflectionQuestions() []string {
	return head([]string{
		"What assumptions did you make when choosing this option, and how could you validate them?",
		"How might different stakeholders react to your decision, and how would you address their concerns?",
		"What would you do differently if you had unlimited resources versus significant constraints?",
		"How does this decision align with your long-term career goals and values?",
		"What early warning signs would indicate that your chosen approach isn't working?",
		"How could you apply the lessons from this scenario to real-world situations in your career?",
	}, 4)
}

var outcomeDescriptions = map[string][]string{
	"high": {
		"Your strategic decision has yielded excellent results, positioning your business for sustainable growth.",
		"The approach you chose has created significant competitive advantages and stakeholder confidence.",
		"Your decision-making process and execution have exceeded expectations, creating lasting positive impact.",
	},
	"medium": {
		"Your decision has produced solid results with room for optimization in future implementations.",
		"The chosen approach has achieved its primary objectives while highlighting areas for improvement.",
		"Your strategy has been effective overall, with valuable lessons learned for future scenarios.",
	},
	"low": {
		"While your decision faced challenges, it provided valuable learning opportunities for future growth.",
		"The approach encountered obstacles that offer important insights for refining your strategy.",
		"This experience, though challenging, has strengthened your decision-making capabilities.",
	},
}

var nextScenarioContexts = map[string]string{
	"high":   "Your successful decision has opened new opportunities and challenges that require advanced strategic thinking.",
	"medium": "The mixed results from your decision have created a complex situation requiring careful navigation.",
	"low":    "The challenges from your previous decision have created urgent issues that need immediate attention.",
}

var shortTermConsequences = []string{
	"Team morale and productivity adjustments based on the new direction",
	"Initial market and customer reactions to the strategic changes",
	"Resource allocation shifts and operational modifications",
	"Stakeholder feedback and relationship dynamics evolution",
}

func scoreTier(score int) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 60:
		return "medium"
	default:
		return "low"
	}
}
