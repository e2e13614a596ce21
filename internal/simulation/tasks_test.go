package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScenario() Scenario {
	return Scenario{
		ID:              "sim_1_abcdef",
		Title:           "Budget Squeeze at the Waterside Market",
		Context:         "A produce stall in Monrovia, Liberia is losing margin.",
		Challenge:       "Rising costs and competing customer demands",
		Stakeholders:    []string{"customers", "suppliers", "staff", "landlord"},
		Constraints:     []string{"limited budget", "time pressure", "supplier delays"},
		SuccessMetrics:  []string{"margin", "repeat customers"},
		DifficultyLevel: 3,
		EstimatedTime:   15,
	}
}

func TestTotalPoints(t *testing.T) {
	tasks := []Task{{Required: true}, {Required: false}, {Required: true}}
	assert.Equal(t, 50, TotalPoints(tasks))
	assert.Equal(t, 0, TotalPoints(nil))
}

func TestGenerateTasksShape(t *testing.T) {
	for seed := range uint64(20) {
		r := NewSeededRand(seed)
		ctx := DefaultContext("CEO", 1+int(seed%5))
		tasks := GenerateTasks(r, sampleScenario(), ctx)

		require.GreaterOrEqual(t, len(tasks), 2)
		require.LessOrEqual(t, len(tasks), 1+maxExtraTasks)
		assert.True(t, tasks[0].Required)
		assert.Contains(t, []TaskType{TaskMultipleChoice, TaskShortAnswer, TaskEssay}, tasks[0].Type)
		if tasks[0].Type == TaskMultipleChoice {
			assert.Len(t, tasks[0].Options, 3)
		}
	}
}

func TestScenarioTasksFallback(t *testing.T) {
	bare := Scenario{ID: "x", Title: "Quiet Quarter", Challenge: "steady state"}
	tasks := scenarioTasks(NewSeededRand(1), bare, Context{})
	require.Len(t, tasks, 2)
	assert.Equal(t, TaskBudgetAllocation, tasks[0].Type)
	assert.Equal(t, "action_x", tasks[1].ID)
}

func TestGenerateOptionsArchetypes(t *testing.T) {
	ctx := DefaultContext("CEO", 1)
	options := GenerateOptions(NewSeededRand(3), sampleScenario(), ctx)
	require.Len(t, options, 3)

	assert.Equal(t, RiskHigh, options[0].RiskLevel)
	assert.Equal(t, RiskLow, options[1].RiskLevel)
	assert.Equal(t, RiskMedium, options[2].RiskLevel)
	assert.InDelta(t, -0.3*ctx.Resources.Budget, options[0].ResourceImpact.BudgetChange, 1e-9)
	assert.InDelta(t, -0.1*ctx.Resources.Budget, options[1].ResourceImpact.BudgetChange, 1e-9)
	assert.InDelta(t, -0.2*ctx.Resources.Budget, options[2].ResourceImpact.BudgetChange, 1e-9)
}

func TestTextResponseOption(t *testing.T) {
	opt := TextResponseOption(TaskResponse{TaskID: "strategic_response", Response: "  Partner with a local cooperative  "})
	assert.Equal(t, "ai_response", opt.ID)
	assert.Equal(t, "Partner with a local cooperative", opt.Text)
	assert.Equal(t, RiskMedium, opt.RiskLevel)
	assert.Equal(t, 3, opt.SkillDevelopment["strategic_thinking"])
}

func TestStageForRound(t *testing.T) {
	assert.Equal(t, StageStartup, StageForRound(1))
	assert.Equal(t, StageStartup, StageForRound(2))
	assert.Equal(t, StageGrowth, StageForRound(3))
	assert.Equal(t, StageGrowth, StageForRound(4))
	assert.Equal(t, StageEstablished, StageForRound(5))
}
