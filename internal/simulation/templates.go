package simulation

// scenarioTemplate is a canned scenario used when no model is available.
type scenarioTemplate struct {
	Title          string
	Context        string
	Challenge      string
	Stakeholders   []string
	Constraints    []string
	SuccessMetrics []string
}

var scenarioTemplates = map[BusinessStage][]scenarioTemplate{
	StageStartup: {
		{
			Title:          "The Funding Crunch Crisis",
			Context:        "Your fintech startup in Monrovia faces multiple simultaneous challenges: funding is running low (2 months runway), your lead developer just quit, a competitor launched a similar product, and the Central Bank of Liberia is considering new regulations that could affect your business model.",
			Challenge:      "Navigate this multi-faceted crisis by making strategic decisions across funding, team management, competitive positioning, and regulatory compliance.",
			Stakeholders:   []string{"investors", "remaining_employees", "customers", "co-founders", "regulatory_bodies", "competitors"},
			Constraints:    []string{"limited_time", "cash_flow", "team_morale", "regulatory_uncertainty", "competitive_pressure"},
			SuccessMetrics: []string{"runway_extension", "team_stability", "market_position", "regulatory_compliance", "customer_retention"},
		},
		{
			Title:          "Product-Market Fit Pivot",
			Context:        "After 6 months, user engagement is low and feedback suggests your product doesn't solve the right problem.",
			Challenge:      "Decide whether to pivot your product strategy or double down on current approach.",
			Stakeholders:   []string{"users", "investors", "development_team", "early_customers"},
			Constraints:    []string{"development_resources", "market_timing", "competitive_pressure"},
			SuccessMetrics: []string{"user_engagement", "market_validation", "revenue_potential"},
		},
		{
			Title:          "First Customer Acquisition",
			Context:        "Your product is ready but you haven't secured your first paying customer yet.",
			Challenge:      "Choose the best strategy to acquire your first customers in the Liberian market.",
			Stakeholders:   []string{"potential_customers", "team", "advisors", "local_community"},
			Constraints:    []string{"marketing_budget", "brand_awareness", "trust_building"},
			SuccessMetrics: []string{"customer_acquisition", "revenue_generation", "market_feedback"},
		},
		{
			Title:          "Regulatory Compliance Nightmare",
			Context:        "New government regulations threaten to shut down your operations within 30 days unless you comply with complex new requirements.",
			Challenge:      "Navigate regulatory compliance while maintaining business operations and customer trust.",
			Stakeholders:   []string{"regulatory_bodies", "customers", "employees", "legal_advisors"},
			Constraints:    []string{"compliance_deadline", "legal_costs", "operational_disruption"},
			SuccessMetrics: []string{"regulatory_approval", "business_continuity", "cost_management"},
		},
		{
			Title:          "Talent War: Key Employee Exodus",
			Context:        "Three of your top performers just received competing offers from a well-funded competitor, and they're considering leaving.",
			Challenge:      "Retain critical talent while managing budget constraints and team morale.",
			Stakeholders:   []string{"key_employees", "remaining_team", "competitors", "investors"},
			Constraints:    []string{"salary_budget", "equity_pool", "company_culture"},
			SuccessMetrics: []string{"talent_retention", "team_productivity", "competitive_advantage"},
		},
		{
			Title:          "Supply Chain Disruption Crisis",
			Context:        "Your main supplier in Ghana has shut down operations, leaving you with 2 weeks of inventory and no immediate alternatives.",
			Challenge:      "Secure alternative supply chains while maintaining product quality and customer commitments.",
			Stakeholders:   []string{"customers", "suppliers", "logistics_partners", "investors"},
			Constraints:    []string{"inventory_levels", "quality_standards", "cost_increases"},
			SuccessMetrics: []string{"supply_continuity", "customer_satisfaction", "cost_control"},
		},
		{
			Title:          "Co-founder Conflict",
			Context:        "You and your co-founder disagree on the company's direction and equity split.",
			Challenge:      "Resolve the conflict while maintaining the partnership and company momentum.",
			Stakeholders:   []string{"co-founder", "employees", "investors", "advisors"},
			Constraints:    []string{"relationship_dynamics", "legal_implications", "company_culture"},
			SuccessMetrics: []string{"partnership_stability", "team_confidence", "operational_continuity"},
		},
	},
	StageGrowth: {
		{
			Title:          "The Great Scaling Dilemma",
			Context:        "Your company is growing rapidly but team communication and culture are suffering.",
			Challenge:      "Balance rapid growth with maintaining company culture and operational efficiency.",
			Stakeholders:   []string{"existing_employees", "new_hires", "management", "customers"},
			Constraints:    []string{"hiring_budget", "training_time", "cultural_integration"},
			SuccessMetrics: []string{"employee_satisfaction", "productivity", "customer_satisfaction"},
		},
		{
			Title:          "Digital Transformation Crossroads",
			Context:        "Your traditional business model is being disrupted by digital competitors, and customers are demanding online services.",
			Challenge:      "Transform your business digitally while maintaining existing operations and customer relationships.",
			Stakeholders:   []string{"traditional_customers", "digital_natives", "employees", "technology_partners"},
			Constraints:    []string{"technology_budget", "employee_skills", "customer_adoption"},
			SuccessMetrics: []string{"digital_revenue", "customer_retention", "operational_efficiency"},
		},
		{
			Title:          "Acquisition Opportunity Dilemma",
			Context:        "A smaller competitor has approached you for acquisition, but it would stretch your resources and require significant integration effort.",
			Challenge:      "Evaluate whether to acquire the competitor or focus on organic growth.",
			Stakeholders:   []string{"acquisition_target", "employees", "customers", "investors"},
			Constraints:    []string{"financial_resources", "integration_complexity", "market_timing"},
			SuccessMetrics: []string{"market_share", "revenue_growth", "integration_success"},
		},
		{
			Title:          "Market Expansion Decision",
			Context:        "Your business is successful locally and you're considering expanding to other West African markets.",
			Challenge:      "Decide whether to expand regionally or consolidate your position in Liberia first.",
			Stakeholders:   []string{"current_customers", "potential_customers", "investors", "regulatory_bodies"},
			Constraints:    []string{"expansion_capital", "regulatory_compliance", "local_partnerships"},
			SuccessMetrics: []string{"market_penetration", "revenue_growth", "operational_efficiency"},
		},
		{
			Title:          "Technology Investment",
			Context:        "Your manual processes are becoming bottlenecks as you scale operations.",
			Challenge:      "Choose the right technology investments to support growth without over-investing.",
			Stakeholders:   []string{"operations_team", "customers", "investors", "technology_partners"},
			Constraints:    []string{"technology_budget", "implementation_time", "staff_training"},
			SuccessMetrics: []string{"operational_efficiency", "customer_satisfaction", "cost_reduction"},
		},
	},
	StageEstablished: {
		{
			Title:          "Legacy System Modernization Crisis",
			Context:        "A new competitor with innovative technology is threatening your market position.",
			Challenge:      "Decide how to respond to competitive threats while maintaining current operations.",
			Stakeholders:   []string{"shareholders", "customers", "employees", "partners"},
			Constraints:    []string{"innovation_budget", "legacy_systems", "market_expectations"},
			SuccessMetrics: []string{"market_share", "innovation_speed", "customer_retention"},
		},
	},
}

func templatesFor(stage BusinessStage) []scenarioTemplate {
	if t, ok := scenarioTemplates[stage]; ok {
		return t
	}
	return scenarioTemplates[StageStartup]
}

var careerPrefixes = map[string][]string{
	"ceo":        {"Executive Decision:", "Leadership Challenge:", "Strategic Crisis:", "CEO Dilemma:"},
	"cto":        {"Tech Leadership:", "Innovation Challenge:", "Technical Crisis:", "CTO Decision:"},
	"marketing":  {"Brand Challenge:", "Market Crisis:", "Customer Dilemma:", "Marketing Strategy:"},
	"finance":    {"Financial Crisis:", "Budget Challenge:", "Investment Decision:", "CFO Dilemma:"},
	"operations": {"Operational Crisis:", "Process Challenge:", "Efficiency Dilemma:", "Operations Decision:"},
	"sales":      {"Revenue Challenge:", "Sales Crisis:", "Client Dilemma:", "Growth Decision:"},
	"hr":         {"People Challenge:", "Culture Crisis:", "Talent Dilemma:", "HR Decision:"},
	"product":    {"Product Crisis:", "User Challenge:", "Feature Dilemma:", "Product Decision:"},
}

type archetype string

const (
	archetypeAggressive   archetype = "aggressive"
	archetypeConservative archetype = "conservative"
	archetypeInnovative   archetype = "innovative"
)

var archetypes = []archetype{archetypeAggressive, archetypeConservative, archetypeInnovative}

var archetypeRisk = map[archetype]RiskLevel{
	archetypeAggressive:   RiskHigh,
	archetypeConservative: RiskLow,
	archetypeInnovative:   RiskMedium,
}

var archetypeSkills = map[archetype]map[string]int{
	archetypeAggressive:   {"leadership": 3, "risk_management": 2, "strategic_thinking": 3},
	archetypeConservative: {"planning": 3, "risk_assessment": 3, "financial_management": 2},
	archetypeInnovative:   {"creativity": 3, "problem_solving": 3, "adaptability": 2},
}

var immediateConsequences = map[archetype][]string{
	archetypeAggressive:   {"High resource consumption", "Rapid team mobilization", "Immediate market response"},
	archetypeConservative: {"Minimal disruption", "Steady progress", "Maintained stability"},
	archetypeInnovative:   {"Learning curve challenges", "Stakeholder curiosity", "Prototype development"},
}

var longTermEffects = map[archetype][]string{
	archetypeAggressive:   {"Potential high returns", "Market leadership position", "Increased competition response"},
	archetypeConservative: {"Sustainable growth", "Risk mitigation", "Gradual market position improvement"},
	archetypeInnovative:   {"Competitive differentiation", "New market opportunities", "Enhanced reputation for innovation"},
}

type impactTemplate struct {
	budgetShare     float64
	timeRequired    string
	teamInvolvement []string
}

var archetypeImpact = map[archetype]impactTemplate{
	archetypeAggressive:   {0.3, "2-4 weeks", []string{"all_departments", "external_consultants"}},
	archetypeConservative: {0.1, "6-8 weeks", []string{"core_team", "gradual_rollout"}},
	archetypeInnovative:   {0.2, "4-6 weeks", []string{"r&d_team", "pilot_group"}},
}

var essayCriteria = []string{
	"Problem identification and root cause analysis",
	"Stakeholder impact assessment",
	"Strategic options evaluation",
	"Risk assessment and mitigation strategies",
	"Implementation roadmap and timeline",
	"Success metrics and monitoring plan",
}

var shortAnswerCriteria = []string{
	"Clear decision articulation",
	"Logical reasoning process",
	"Consideration of key constraints",
	"Practical implementation approach",
}

// careerSkills lists the skills feedback talks about for each career path:
// the first two are treated as demonstrated, the next two as to develop.
var careerSkills = map[string][]string{
	"ceo":        {"strategic_thinking", "leadership", "decision_making", "stakeholder_management"},
	"cto":        {"technical_leadership", "innovation_management", "system_thinking", "team_building"},
	"marketing":  {"market_analysis", "brand_management", "customer_insights", "creative_strategy"},
	"finance":    {"financial_analysis", "risk_management", "budgeting", "investment_strategy"},
	"operations": {"process_optimization", "quality_management", "efficiency_improvement", "logistics"},
	"sales":      {"relationship_building", "negotiation", "market_penetration", "revenue_optimization"},
	"hr":         {"talent_management", "organizational_development", "culture_building", "performance_management"},
	"product":    {"user_experience", "product_strategy", "market_research", "innovation"},
}

// careerSkillGains are added on top of an option's own skill development when
// a round's result is computed.
var careerSkillGains = map[string]map[string]int{
	"ceo":        {"strategic_thinking": 3, "leadership": 2, "decision_making": 3},
	"cto":        {"technical_leadership": 3, "innovation": 2, "system_thinking": 2},
	"marketing":  {"market_analysis": 3, "creativity": 2, "customer_insights": 2},
	"finance":    {"financial_analysis": 3, "risk_management": 2, "planning": 2},
	"operations": {"process_optimization": 3, "efficiency": 2, "quality_management": 2},
	"sales":      {"relationship_building": 3, "negotiation": 2, "persuasion": 2},
	"hr":         {"people_management": 3, "culture_building": 2, "communication": 2},
	"product":    {"user_experience": 3, "product_strategy": 2, "innovation": 2},
}
