package simulation

type DecisionAnalysis struct {
	Strengths             []string `json:"strengths"`
	AreasForImprovement   []string `json:"areas_for_improvement"`
	AlternativeApproaches []string `json:"alternative_approaches"`
}

type SkillDemonstrated struct {
	Skill    string `json:"skill"`
	Level    string `json:"level"`
	Evidence string `json:"evidence"`
}

type SkillToDevelop struct {
	Skill        string `json:"skill"`
	WhyImportant string `json:"why_important"`
	HowToImprove string `json:"how_to_improve"`
}

type SkillDevelopment struct {
	SkillsDemonstrated []SkillDemonstrated `json:"skills_demonstrated"`
	SkillsToDevelop    []SkillToDevelop    `json:"skills_to_develop"`
}

type RealWorldExample struct {
	Company   string `json:"company"`
	Situation string `json:"situation"`
	Outcome   string `json:"outcome"`
	Lesson    string `json:"lesson"`
}

type Book struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Relevance   string   `json:"relevance"`
	KeyChapters []string `json:"key_chapters,omitempty"`
}

type Article struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
}

type Video struct {
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Channel   string   `json:"channel"`
	Duration  string   `json:"duration"`
	KeyTopics []string `json:"key_topics"`
}

type Course struct {
	Title         string `json:"title"`
	Provider      string `json:"provider"`
	URL           string `json:"url"`
	Level         string `json:"level"`
	EstimatedTime string `json:"estimated_time"`
}

type LearningResources struct {
	Books    []Book    `json:"books"`
	Articles []Article `json:"articles,omitempty"`
	Videos   []Video   `json:"videos"`
	Courses  []Course  `json:"courses"`
}

type ActionItem struct {
	Task            string   `json:"task"`
	Priority        string   `json:"priority"`
	Timeline        string   `json:"timeline"`
	ResourcesNeeded []string `json:"resources_needed"`
}

// Feedback is the mentor feedback attached to a decision.
type Feedback struct {
	OverallAssessment   string             `json:"overall_assessment"`
	DecisionAnalysis    DecisionAnalysis   `json:"decision_analysis"`
	SkillDevelopment    SkillDevelopment   `json:"skill_development"`
	RealWorldExamples   []RealWorldExample `json:"real_world_examples"`
	LearningResources   LearningResources  `json:"learning_resources"`
	ActionItems         []ActionItem       `json:"action_items"`
	ReflectionQuestions []string           `json:"reflection_questions"`
}

type Consequences struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// Result is the full outcome of a round.
type Result struct {
	SelectedOption      Option         `json:"selected_option"`
	OutcomeDescription  string         `json:"outcome_description"`
	Consequences        Consequences   `json:"consequences"`
	SkillGains          map[string]int `json:"skill_gains"`
	PerformanceScore    int            `json:"performance_score"`
	AIFeedback          Feedback       `json:"ai_feedback"`
	NextScenarioContext string         `json:"next_scenario_context"`
	Summary             string         `json:"summary"`
}
