package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/fadilmartias/bizsim/internal/quiz"
	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/fadilmartias/bizsim/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testApp(t *testing.T, withDB bool) *fiber.App {
	t.Helper()
	var repos *usecase.Repositories
	if withDB {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { sqlDB.Close() })
		require.NoError(t, db.AutoMigrate(model.All()...))
		repos = usecase.NewRepositories(db)
	}

	rng := simulation.NewSeededRand(11)
	uc := usecase.NewSimulationUsecase(
		repos,
		simulation.NewGenerator(nil, rng, simulation.GeneratorConfig{}),
		simulation.NewFeedbackGenerator(nil, nil, rng, 0),
		nil,
		rng,
		&config.SimulationConfig{PoolTTL: time.Hour},
	)

	app := fiber.New()
	NewSimulationHandler(uc).RegisterRoutes(app)
	NewSessionHandler(uc).RegisterRoutes(app)
	NewQuizHandler(quiz.NewGenerator(nil, 0)).RegisterRoutes(app)
	NewViewHandler(uc).RegisterRoutes(app)
	RegisterMetrics(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestGenerateAndSubmitRound(t *testing.T) {
	app := testApp(t, false)

	status, body := do(t, app, "POST", "/simulation/generate", `{"careerPath":"CTO","round":2}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, simulation.SourceTemplate, body["source"])
	sim := body["simulation"].(map[string]any)
	scenario := sim["scenario"].(map[string]any)
	assert.NotEmpty(t, scenario["title"])
	assert.Equal(t, "CTO", body["context"].(map[string]any)["user_background"].(map[string]any)["career_path"])

	scenarioJSON, err := json.Marshal(scenario)
	require.NoError(t, err)
	submit := `{"scenario":` + string(scenarioJSON) + `,"option":{"id":"option_a","text":"Raise prices","risk_level":"low","skill_development":{"pricing":2}},"round":2}`
	status, body = do(t, app, "POST", "/simulation/submit", submit)
	require.Equal(t, fiber.StatusOK, status)

	feedback := body["feedback"].(map[string]any)
	assert.Contains(t, feedback, "ai_feedback")
	assert.Equal(t, map[string]any{"pricing": float64(2)}, feedback["skills_gained"])
	score := feedback["outcome_score"].(float64)
	assert.GreaterOrEqual(t, score, 55.0)
	assert.Contains(t, body, "result")
	assert.NotContains(t, body, "session")
}

func TestSubmitRequiresScenarioAndOption(t *testing.T) {
	app := testApp(t, false)

	status, body := do(t, app, "POST", "/simulation/submit", `{"round":1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Scenario and option data are required", body["error"])
}

func TestSessionEndpointsWithoutDatabase(t *testing.T) {
	app := testApp(t, false)

	status, body := do(t, app, "POST", "/simulation/session", `{"userId":"`+uuid.NewString()+`"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Database not available", body["error"])

	status, body = do(t, app, "POST", "/simulation/session", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "User ID is required", body["error"])
}

func TestSessionLifecycle(t *testing.T) {
	app := testApp(t, true)
	userID := uuid.NewString()

	status, body := do(t, app, "POST", "/simulation/session", `{"userId":"`+userID+`","careerPath":"CEO"}`)
	require.Equal(t, fiber.StatusOK, status)
	sessionID := body["sessionId"].(string)
	assert.NotContains(t, body, "existing")

	status, body = do(t, app, "POST", "/simulation/session", `{"userId":"`+userID+`"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["existing"])
	assert.Equal(t, sessionID, body["sessionId"])
	assert.Equal(t, float64(1), body["currentRound"])

	status, body = do(t, app, "PATCH", "/simulation/session", `{"sessionId":"`+sessionID+`","status":"completed"}`)
	require.Equal(t, fiber.StatusOK, status)
	session := body["session"].(map[string]any)
	assert.Equal(t, "completed", session["status"])
	assert.Equal(t, float64(100), session["progress"])

	status, body = do(t, app, "PATCH", "/simulation/session", `{"sessionId":"`+uuid.NewString()+`","progress":10}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Session not found", body["error"])

	status, body = do(t, app, "PATCH", "/simulation/session", `{"progress":10}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Session ID is required", body["error"])
	assert.Equal(t, map[string]any{"sessionId": "Session ID is required"}, body["details"])

	status, body = do(t, app, "PATCH", "/simulation/session", `{"sessionId":"`+sessionID+`","status":"archived"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"status": "Status must be one of ongoing, completed, paused"}, body["details"])

	status, body = do(t, app, "GET", "/simulation/sessions?userId="+userID, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["sessions"], 1)
	assert.Contains(t, body, "pagination")

	status, body = do(t, app, "GET", "/simulation/social-proof?title=CEO", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = do(t, app, "GET", "/simulation/progress?userId="+userID, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["progress"])
}

func TestSocialProofRequiresTitle(t *testing.T) {
	app := testApp(t, true)

	status, body := do(t, app, "GET", "/simulation/social-proof", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Scenario title is required", body["error"])
}

func TestPersonalizedQuiz(t *testing.T) {
	app := testApp(t, false)

	status, body := do(t, app, "POST", "/ai/personalized-quiz", `{"interestArea":"Marketing"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["fallback"])
	assert.Len(t, body["questions"], 3)

	status, body = do(t, app, "POST", "/ai/personalized-quiz", `{"interestArea":" "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Interest area is required", body["error"])
}

func TestViewRendersHTML(t *testing.T) {
	app := testApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/simulation/view?careerPath=CFO&round=3", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Round 3")
	assert.Contains(t, string(page), "growth stage")
}

func TestMetricsEndpoint(t *testing.T) {
	app := testApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(text), "go_goroutines")
}
