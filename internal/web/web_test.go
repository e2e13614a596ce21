package web

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskClassListsEachClassOnce(t *testing.T) {
	for _, level := range []simulation.RiskLevel{simulation.RiskHigh, simulation.RiskMedium, simulation.RiskLow, ""} {
		classes := strings.Fields(RiskClass(level))
		seen := map[string]bool{}
		for _, c := range classes {
			assert.False(t, seen[c], "duplicate class %q", c)
			seen[c] = true
		}
		assert.True(t, seen["badge"])
	}
	assert.Contains(t, RiskClass(simulation.RiskHigh), "badge-high")
	assert.Contains(t, RiskClass(""), "badge-medium")
}

func TestRenderRound(t *testing.T) {
	g := simulation.NewGenerator(nil, simulation.NewSeededRand(7), simulation.GeneratorConfig{})
	ctx := simulation.DefaultContext("CEO", 2)
	scenario := simulation.Scenario{
		ID:           "sim_1",
		Title:        "Supplier <Strike>",
		Context:      "Your main flour supplier stopped deliveries.",
		Challenge:    "Keep the bakery open",
		Stakeholders: []string{"suppliers", "team"},
	}
	sim := g.Assemble(scenario, ctx, simulation.SourceTemplate)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Page{Simulation: sim, Context: ctx, Source: sim.Source, Round: 2}))

	out := buf.String()
	assert.Contains(t, out, "Supplier &lt;Strike&gt;")
	assert.Contains(t, out, "Round 2")
	assert.Contains(t, out, "9,000")
	assert.Contains(t, out, `class="card card-primary muted"`)
	for _, task := range sim.Tasks {
		assert.Contains(t, out, html.EscapeString(task.Title))
	}
}
