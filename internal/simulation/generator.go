package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/metrics"
	"github.com/fadilmartias/bizsim/internal/service"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var scenarioSchema = service.MustSchema("scenario", `{
  "type": "object",
  "required": ["title", "context", "challenge"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "context": {"type": "string", "minLength": 1},
    "situation": {"type": "string"},
    "challenge": {"type": "string", "minLength": 1},
    "stakeholders": {"type": "array", "items": {"type": "string"}},
    "constraints": {"type": "array", "items": {"type": "string"}},
    "success_metrics": {"type": "array", "items": {"type": "string"}},
    "difficulty_level": {"type": ["number", "string", "null"]},
    "estimated_time": {"type": ["number", "string", "null"]}
  }
}`)

var (
	defaultStakeholders   = []string{"customers", "team", "investors", "community"}
	defaultConstraints    = []string{"time_pressure", "limited_budget", "market_uncertainty"}
	defaultSuccessMetrics = []string{"growth", "customer_satisfaction", "profitability"}
)

var errTitleUsed = errors.New("scenario title already used")

type GeneratorConfig struct {
	MaxAttempts int
	// Budget bounds the whole model path; when it runs out the template
	// path is used.
	Budget      time.Duration
	CallTimeout time.Duration
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func NewGeneratorConfig(sim *config.SimulationConfig, llm *config.LLMConfig) GeneratorConfig {
	return GeneratorConfig{
		MaxAttempts: sim.MaxAttempts,
		Budget:      sim.GenerationBudget,
		CallTimeout: llm.RequestTimeout,
		BaseDelay:   sim.RetryBaseDelay,
		MaxDelay:    sim.RetryMaxDelay,
	}
}

// Generator produces simulation rounds, asking the model first and falling
// back to the template tables.
type Generator struct {
	provider service.Provider
	rng      Rand
	cfg      GeneratorConfig
}

// NewGenerator returns a Generator. provider may be nil, in which case only
// templates are used.
func NewGenerator(provider service.Provider, rng Rand, cfg GeneratorConfig) *Generator {
	if rng == nil {
		rng = DefaultRand
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Generator{provider: provider, rng: rng, cfg: cfg}
}

// Generate builds one round for simCtx. Titles from history and
// excludeTitles are avoided case-insensitively; with the model this holds
// within the attempt budget, with templates as long as unused ones remain.
func (g *Generator) Generate(ctx context.Context, simCtx Context, history []HistoryEntry, excludeTitles []string) (*Simulation, error) {
	historyTitles := make([]string, 0, len(history))
	for _, h := range history {
		historyTitles = append(historyTitles, h.ScenarioType)
	}
	used := newTitleSet(excludeTitles, historyTitles)
	perf := CalculateUserPerformance(history)

	source := SourceModel
	scenario, ok := g.modelScenario(ctx, simCtx, used, perf)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		source = SourceTemplate
		scenario = scenarioFromTemplate(g.rng, simCtx, used, perf)
	}
	metrics.Get().ScenariosGenerated.WithLabelValues(source).Inc()

	return g.Assemble(scenario, simCtx, source), nil
}

// Assemble derives the tasks, framing and points for scenario.
func (g *Generator) Assemble(scenario Scenario, simCtx Context, source string) *Simulation {
	tasks := GenerateTasks(g.rng, scenario, simCtx)
	return &Simulation{
		Scenario:           scenario,
		Tasks:              tasks,
		AIContext:          AIContext(scenario, simCtx),
		LearningObjectives: LearningObjectives(simCtx),
		TotalPoints:        TotalPoints(tasks),
		Source:             source,
	}
}

func (g *Generator) modelScenario(ctx context.Context, simCtx Context, used titleSet, perf Performance) (Scenario, bool) {
	if g.provider == nil {
		return Scenario{}, false
	}

	budgetCtx := ctx
	if g.cfg.Budget > 0 {
		var cancel context.CancelFunc
		budgetCtx, cancel = context.WithTimeout(ctx, g.cfg.Budget)
		defer cancel()
	}

	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			wait := service.Backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt-1)
			select {
			case <-budgetCtx.Done():
				logger.Log.Warn("scenario generation budget exhausted", zap.Int("attempts", attempt))
				return Scenario{}, false
			case <-time.After(wait):
			}
		}

		scenario, err := g.requestScenario(budgetCtx, simCtx, used, perf, attempt)
		if err == nil {
			return scenario, true
		}
		logger.Log.Warn("model scenario rejected",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", g.cfg.MaxAttempts),
			zap.Error(err))
		if budgetCtx.Err() != nil {
			return Scenario{}, false
		}
	}
	logger.Log.Warn("model generation failed after retries, using template fallback")
	return Scenario{}, false
}

func (g *Generator) requestScenario(ctx context.Context, simCtx Context, used titleSet, perf Performance, attempt int) (Scenario, error) {
	if g.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.CallTimeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(ctx, service.Request{
		System:      scenarioSystemPrompt,
		Prompt:      scenarioPrompt(simCtx, used, perf, attempt),
		Schema:      scenarioSchema,
		JSONMode:    true,
		Temperature: math.Min(0.9+0.1*float64(attempt), 1.5),
	})
	if err != nil {
		return Scenario{}, err
	}

	scenario, err := parseScenario(resp.Content)
	if err != nil {
		return Scenario{}, err
	}
	if used.has(scenario.Title) {
		return Scenario{}, fmt.Errorf("%w: %q", errTitleUsed, scenario.Title)
	}
	return scenario, nil
}

// parseScenario reads a schema-checked model reply, filling defaults and
// clamping the numeric fields.
func parseScenario(raw string) (Scenario, error) {
	doc := gjson.Parse(raw)

	title := strings.TrimSpace(doc.Get("title").String())
	scenarioContext := strings.TrimSpace(doc.Get("context").String())
	challenge := strings.TrimSpace(doc.Get("challenge").String())
	if title == "" || scenarioContext == "" || challenge == "" {
		return Scenario{}, fmt.Errorf("%w: title, context and challenge are required", service.ErrInvalidResponse)
	}

	situation := strings.TrimSpace(doc.Get("situation").String())
	if situation == "" {
		situation = scenarioContext
	}

	return Scenario{
		ID:              NewScenarioID(),
		Title:           title,
		Context:         scenarioContext,
		Situation:       situation,
		Challenge:       challenge,
		Stakeholders:    stringList(doc.Get("stakeholders"), defaultStakeholders),
		Constraints:     stringList(doc.Get("constraints"), defaultConstraints),
		SuccessMetrics:  stringList(doc.Get("success_metrics"), defaultSuccessMetrics),
		DifficultyLevel: clamp(intOr(doc.Get("difficulty_level"), 3), 1, 5),
		EstimatedTime:   clamp(intOr(doc.Get("estimated_time"), 15), 10, 25),
	}, nil
}

func stringList(r gjson.Result, fallback []string) []string {
	var out []string
	for _, item := range r.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}

// intOr accepts numbers and numeric strings ("4", "12.5").
func intOr(r gjson.Result, fallback int) int {
	f := math.NaN()
	switch r.Type {
	case gjson.Number:
		f = r.Float()
	case gjson.String:
		if v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err == nil {
			f = v
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return int(math.Round(math.Max(-1e6, math.Min(1e6, f))))
}
