package simulation

type BusinessStage string

const (
	StageStartup     BusinessStage = "startup"
	StageGrowth      BusinessStage = "growth"
	StageEstablished BusinessStage = "established"
)

// StageForRound maps a session round to the business stage it plays in.
func StageForRound(round int) BusinessStage {
	switch {
	case round <= 2:
		return StageStartup
	case round <= 4:
		return StageGrowth
	default:
		return StageEstablished
	}
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type TaskType string

const (
	TaskMultipleChoice   TaskType = "multiple_choice"
	TaskShortAnswer      TaskType = "short_answer"
	TaskEssay            TaskType = "essay"
	TaskBudgetAllocation TaskType = "budget_allocation"
	TaskPriorityRanking  TaskType = "priority_ranking"
)

type Resources struct {
	Budget         float64 `json:"budget"`
	TeamSize       int     `json:"team_size"`
	TimeConstraint string  `json:"time_constraint"`
}

type UserBackground struct {
	CareerPath        string   `json:"career_path"`
	SkillLevel        int      `json:"skill_level"`
	PreviousDecisions []string `json:"previous_decisions"`
}

// Context describes the business a learner plays in for one round.
type Context struct {
	Industry         string         `json:"industry"`
	Location         string         `json:"location"`
	BusinessStage    BusinessStage  `json:"businessStage"`
	Resources        Resources      `json:"resources"`
	MarketConditions string         `json:"market_conditions"`
	UserBackground   UserBackground `json:"user_background"`
}

const (
	DefaultIndustry         = "Technology"
	DefaultLocation         = "Monrovia, Liberia"
	DefaultMarketConditions = "emerging market with growth potential"
	DefaultTimeConstraint   = "2-3 months"
	DefaultCareerPath       = "CEO"
)

// DefaultContext is the context used when nothing is known about the learner.
func DefaultContext(careerPath string, round int) Context {
	if careerPath == "" {
		careerPath = DefaultCareerPath
	}
	return Context{
		Industry:      DefaultIndustry,
		Location:      DefaultLocation,
		BusinessStage: StageForRound(round),
		Resources: Resources{
			Budget:         float64(5000 + round*2000),
			TeamSize:       min(2+round, 10),
			TimeConstraint: DefaultTimeConstraint,
		},
		MarketConditions: DefaultMarketConditions,
		UserBackground: UserBackground{
			CareerPath:        careerPath,
			SkillLevel:        round * 20,
			PreviousDecisions: []string{},
		},
	}
}

// SubmissionContext is the context assumed for a submission that carries none.
func SubmissionContext(round int) Context {
	return Context{
		Industry:      DefaultIndustry,
		Location:      DefaultLocation,
		BusinessStage: StageStartup,
		Resources: Resources{
			Budget:         5000,
			TeamSize:       5,
			TimeConstraint: DefaultTimeConstraint,
		},
		MarketConditions: DefaultMarketConditions,
		UserBackground: UserBackground{
			CareerPath:        DefaultCareerPath,
			SkillLevel:        round * 20,
			PreviousDecisions: []string{},
		},
	}
}

type Scenario struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Context         string   `json:"context"`
	Situation       string   `json:"situation"`
	Challenge       string   `json:"challenge"`
	Stakeholders    []string `json:"stakeholders"`
	Constraints     []string `json:"constraints"`
	SuccessMetrics  []string `json:"success_metrics"`
	DifficultyLevel int      `json:"difficulty_level"`
	EstimatedTime   int      `json:"estimated_time"`
}

type ResourceImpact struct {
	BudgetChange    float64  `json:"budget_change"`
	TimeRequired    string   `json:"time_required"`
	TeamInvolvement []string `json:"team_involvement"`
}

type Option struct {
	ID                    string         `json:"id"`
	Text                  string         `json:"text"`
	Reasoning             string         `json:"reasoning,omitempty"`
	WhyThisMatters        string         `json:"why_this_matters,omitempty"`
	ImmediateConsequences []string       `json:"immediate_consequences"`
	LongTermEffects       []string       `json:"long_term_effects"`
	SkillDevelopment      map[string]int `json:"skill_development"`
	RiskLevel             RiskLevel      `json:"risk_level"`
	ResourceImpact        ResourceImpact `json:"resource_impact"`
}

type TaskConstraints struct {
	MinLength   int     `json:"min_length,omitempty"`
	MaxLength   int     `json:"max_length,omitempty"`
	WordLimit   int     `json:"word_limit,omitempty"`
	BudgetLimit float64 `json:"budget_limit,omitempty"`
	MaxItems    int     `json:"max_items,omitempty"`
}

type Task struct {
	ID                 string           `json:"id"`
	Type               TaskType         `json:"type"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Prompt             string           `json:"prompt,omitempty"`
	Required           bool             `json:"required"`
	Options            []Option         `json:"options,omitempty"`
	Constraints        *TaskConstraints `json:"constraints,omitempty"`
	EvaluationCriteria []string         `json:"evaluation_criteria,omitempty"`
}

// Simulation is one generated round: a scenario and the tasks that grade it.
type Simulation struct {
	Scenario           Scenario `json:"scenario"`
	Tasks              []Task   `json:"tasks"`
	AIContext          string   `json:"ai_context"`
	LearningObjectives []string `json:"learning_objectives"`
	TotalPoints        int      `json:"total_points"`
	// Source is SourceModel or SourceTemplate.
	Source string `json:"-"`
}

const (
	SourceModel    = "model"
	SourceTemplate = "template"
	SourcePool     = "pool"
)

type HistoryFeedback struct {
	OutcomeScore float64            `json:"outcome_score"`
	SkillsGained map[string]float64 `json:"skills_gained"`
}

// HistoryEntry is a prior round as seen by the generators. ScenarioType holds
// the scenario title.
type HistoryEntry struct {
	ScenarioType   string          `json:"scenarioType"`
	SelectedOption string          `json:"selectedOption,omitempty"`
	Feedback       HistoryFeedback `json:"feedback"`
}

type Performance struct {
	AverageScore float64  `json:"averageScore"`
	StrongSkills []string `json:"strongSkills"`
	WeakSkills   []string `json:"weakSkills"`
}

// TaskResponse is a learner's answer to a non multiple-choice task.
type TaskResponse struct {
	TaskID    string   `json:"taskId"`
	Type      TaskType `json:"type"`
	Response  string   `json:"response"`
	WordCount int      `json:"word_count,omitempty"`
}
