package usecase

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/fadilmartias/bizsim/internal/cache"
	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/dto"
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/metrics"
	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/fadilmartias/bizsim/internal/repository"
	"github.com/fadilmartias/bizsim/internal/response"
	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	historyLimit     = 10
	maxRegenerations = 3
)

type Repositories struct {
	Users     *repository.UserRepository
	Sessions  *repository.SessionRepository
	Scenarios *repository.ScenarioRepository
	Decisions *repository.DecisionRepository
	Progress  *repository.ProgressRepository
}

// NewRepositories wires every repository over db. A nil db returns nil,
// which runs the usecase in preview mode.
func NewRepositories(db *gorm.DB) *Repositories {
	if db == nil {
		return nil
	}
	return &Repositories{
		Users:     repository.NewUserRepository(db),
		Sessions:  repository.NewSessionRepository(db),
		Scenarios: repository.NewScenarioRepository(db),
		Decisions: repository.NewDecisionRepository(db),
		Progress:  repository.NewProgressRepository(db),
	}
}

type SimulationUsecase struct {
	repos       *Repositories
	generator   *simulation.Generator
	feedback    *simulation.FeedbackGenerator
	socialProof cache.SocialProofCache
	rng         simulation.Rand
	poolSize    int
	poolTTL     time.Duration
}

// NewSimulationUsecase builds the usecase. repos may be nil (preview mode:
// rounds are generated and scored but nothing is stored) and socialProof may
// be nil.
func NewSimulationUsecase(repos *Repositories, generator *simulation.Generator, feedback *simulation.FeedbackGenerator, socialProof cache.SocialProofCache, rng simulation.Rand, simCfg *config.SimulationConfig) *SimulationUsecase {
	if socialProof == nil {
		socialProof = cache.NewNoopCache()
	}
	if rng == nil {
		rng = simulation.DefaultRand
	}
	return &SimulationUsecase{
		repos:       repos,
		generator:   generator,
		feedback:    feedback,
		socialProof: socialProof,
		rng:         rng,
		poolSize:    simCfg.PoolSize,
		poolTTL:     simCfg.PoolTTL,
	}
}

// GenerateSimulation builds the next round for a learner. A full pool of
// stored scenarios for the learner's career, difficulty and stage is drawn
// from before anything new is generated.
func (uc *SimulationUsecase) GenerateSimulation(ctx context.Context, req dto.GenerateSimulationRequest) (*dto.GenerateSimulationResponse, error) {
	careerPath := cmp.Or(strings.TrimSpace(req.CareerPath), simulation.DefaultCareerPath)
	round := max(req.Round, 1)

	simCtx := simulation.DefaultContext(careerPath, round)
	var history []simulation.HistoryEntry
	if userID, ok := uc.persistentID(req.UserID); ok {
		simCtx, history = uc.learnerContext(ctx, userID, careerPath, round)
	}

	used := usedTitles(req.ExcludeScenarioTitles, history)
	key := repository.PoolKey{
		CareerPath:      careerPath,
		DifficultyLevel: min(round, 5),
		BusinessStage:   string(simCtx.BusinessStage),
	}

	sim := uc.fromPool(ctx, key, used)
	if sim == nil {
		var err error
		sim, err = uc.generate(ctx, simCtx, history, req.ExcludeScenarioTitles, used)
		if err != nil {
			return nil, fmt.Errorf("generate simulation: %w", err)
		}
		if sim.Source == simulation.SourceModel {
			uc.storeInPool(ctx, key, sim)
		}
	}

	if slices.Contains(req.ExcludeScenarioIDs, sim.Scenario.ID) {
		sim.Scenario.ID = simulation.NewScenarioID()
	}
	if round == 1 {
		uc.nameSession(ctx, req.SessionID, sim.Scenario)
	}

	return &dto.GenerateSimulationResponse{Simulation: sim, Context: simCtx, Source: sim.Source}, nil
}

func (uc *SimulationUsecase) generate(ctx context.Context, simCtx simulation.Context, history []simulation.HistoryEntry, excludeTitles []string, used map[string]struct{}) (*simulation.Simulation, error) {
	sim, err := uc.generator.Generate(ctx, simCtx, history, excludeTitles)
	for attempt := 0; err == nil && titleUsed(used, sim.Scenario.Title) && attempt < maxRegenerations; attempt++ {
		logger.Log.Debug("generated title already used, regenerating", zap.String("title", sim.Scenario.Title))
		sim, err = uc.generator.Generate(ctx, simCtx, history, excludeTitles)
	}
	return sim, err
}

func (uc *SimulationUsecase) fromPool(ctx context.Context, key repository.PoolKey, used map[string]struct{}) *simulation.Simulation {
	if uc.repos == nil || uc.poolSize <= 0 {
		return nil
	}
	count, err := uc.repos.Scenarios.CountByKey(ctx, key, uc.poolTTL)
	if err != nil {
		logger.Log.Warn("count scenario pool", zap.Error(err))
		return nil
	}
	if count < int64(uc.poolSize) {
		return nil
	}

	row, err := uc.repos.Scenarios.FindReusable(ctx, key, uc.poolTTL, slices.Collect(maps.Keys(used)))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Warn("find reusable scenario", zap.Error(err))
		}
		return nil
	}

	var sim simulation.Simulation
	if err := json.Unmarshal(row.ScenarioData, &sim); err != nil {
		logger.Log.Warn("decode pooled scenario", zap.String("id", row.ID.String()), zap.Error(err))
		return nil
	}
	if err := uc.repos.Scenarios.IncrementUsage(ctx, row.ID); err != nil {
		logger.Log.Warn("increment scenario usage", zap.Error(err))
	}
	metrics.Get().ScenarioPoolHits.Inc()
	sim.Source = simulation.SourcePool
	return &sim
}

func (uc *SimulationUsecase) storeInPool(ctx context.Context, key repository.PoolKey, sim *simulation.Simulation) {
	if uc.repos == nil {
		return
	}
	data, err := json.Marshal(sim)
	if err != nil {
		logger.Log.Warn("encode scenario for pool", zap.Error(err))
		return
	}
	row := &model.GeneratedScenario{
		Title:           sim.Scenario.Title,
		ScenarioData:    datatypes.JSON(data),
		CareerPath:      key.CareerPath,
		DifficultyLevel: key.DifficultyLevel,
		BusinessStage:   key.BusinessStage,
		UsageCount:      1,
	}
	if err := uc.repos.Scenarios.Create(ctx, row); err != nil {
		logger.Log.Warn("store generated scenario", zap.Error(err))
		return
	}
	removed, err := uc.repos.Scenarios.Prune(ctx, key, uc.poolSize, uc.poolTTL)
	if err != nil {
		logger.Log.Warn("prune scenario pool", zap.Error(err))
		return
	}
	logger.Log.Debug("stored scenario for reuse", zap.String("id", row.ID.String()), zap.Int64("pruned", removed))
}

// nameSession titles a session after its first scenario so completed
// sessions can be counted per scenario.
func (uc *SimulationUsecase) nameSession(ctx context.Context, rawID string, scenario simulation.Scenario) {
	id, ok := uc.persistentID(rawID)
	if !ok {
		return
	}
	_, err := uc.repos.Sessions.Update(ctx, id, map[string]any{
		"title":       scenario.Title,
		"description": scenario.Challenge,
	})
	if err != nil {
		logger.Log.Warn("name session after scenario", zap.String("session_id", rawID), zap.Error(err))
	}
}

// learnerContext builds the round context from the stored profile and the
// learner's recent decisions.
func (uc *SimulationUsecase) learnerContext(ctx context.Context, userID uuid.UUID, careerPath string, round int) (simulation.Context, []simulation.HistoryEntry) {
	simCtx := simulation.DefaultContext(careerPath, round)
	simCtx.UserBackground.SkillLevel = skillLevelScore("")

	user, err := uc.repos.Users.FindByID(ctx, userID)
	switch {
	case err == nil:
		prefs := user.Preferences.Data()
		simCtx.Industry = cmp.Or(prefs.Industry, user.Industry, simulation.DefaultIndustry)
		simCtx.Location = cmp.Or(user.Location, simulation.DefaultLocation)
		simCtx.MarketConditions = cmp.Or(prefs.MarketConditions, simulation.DefaultMarketConditions)
		simCtx.UserBackground.CareerPath = cmp.Or(user.CareerPath, careerPath)
		simCtx.UserBackground.SkillLevel = skillLevelScore(user.SkillLevel)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		logger.Log.Warn("load user profile", zap.String("user_id", userID.String()), zap.Error(err))
	}

	history, previous := uc.history(ctx, userID)
	simCtx.UserBackground.PreviousDecisions = previous
	return simCtx, history
}

// history returns the learner's last decisions as generator history along
// with the options they picked.
func (uc *SimulationUsecase) history(ctx context.Context, userID uuid.UUID) ([]simulation.HistoryEntry, []string) {
	previous := []string{}
	decisions, err := uc.repos.Decisions.RecentByUser(ctx, userID, historyLimit)
	if err != nil {
		logger.Log.Warn("load decision history", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, previous
	}

	var ids []uuid.UUID
	for _, d := range decisions {
		if d.ScenarioTitle != "" {
			continue
		}
		if id, err := uuid.Parse(d.ScenarioID); err == nil {
			ids = append(ids, id)
		}
	}
	titles, err := uc.repos.Scenarios.TitlesByIDs(ctx, ids)
	if err != nil {
		logger.Log.Warn("load scenario titles", zap.Error(err))
	}

	history := make([]simulation.HistoryEntry, 0, len(decisions))
	for _, d := range decisions {
		var title string
		if id, err := uuid.Parse(d.ScenarioID); err == nil {
			title = titles[id]
		}
		gains := make(map[string]float64, len(d.SkillsGained.Data()))
		for skill, points := range d.SkillsGained.Data() {
			gains[skill] = float64(points)
		}
		history = append(history, simulation.HistoryEntry{
			ScenarioType:   cmp.Or(d.ScenarioTitle, title, d.ScenarioID, "unknown"),
			SelectedOption: d.SelectedOption,
			Feedback: simulation.HistoryFeedback{
				OutcomeScore: float64(d.OutcomeScore),
				SkillsGained: gains,
			},
		})
		if d.SelectedOption != "" {
			previous = append(previous, d.SelectedOption)
		}
	}
	return history, previous
}

// SubmitDecision scores a round, stores the decision and the learner's
// skill progress, and moves the session to its next round.
func (uc *SimulationUsecase) SubmitDecision(ctx context.Context, req dto.SubmitDecisionRequest) (*dto.SubmitDecisionResponse, error) {
	if req.Scenario == nil || (req.Option == nil && req.Task == nil) {
		return nil, invalid("Scenario and option data are required")
	}
	round := max(req.Round, 1)

	simCtx := simulation.SubmissionContext(round)
	if req.Context != nil {
		simCtx = *req.Context
	}

	var option simulation.Option
	var payload datatypes.JSON
	if req.Option != nil {
		option = *req.Option
	} else {
		option = simulation.TextResponseOption(*req.Task)
		payload, _ = json.Marshal(req.Task)
	}

	userID, hasUser := uc.persistentID(req.UserID)
	var history []simulation.HistoryEntry
	if hasUser {
		history, _ = uc.history(ctx, userID)
	}

	result := uc.feedback.GenerateResult(ctx, *req.Scenario, option, simCtx, history)
	score := simulation.OutcomeScore(uc.rng, option, round)
	gains := maps.Clone(option.SkillDevelopment)
	if gains == nil {
		gains = map[string]int{}
	}

	resp := &dto.SubmitDecisionResponse{
		Feedback: dto.DecisionFeedback{
			AIFeedback:   result.AIFeedback,
			OutcomeScore: score,
			SkillsGained: gains,
		},
		Result: result,
	}

	sessionID, hasSession := uc.persistentID(req.SessionID)
	if hasUser {
		uc.recordDecision(ctx, userID, sessionID, hasSession, req.Scenario, option, payload, result.AIFeedback, round, score, gains)
		if err := uc.repos.Progress.Upsert(ctx, userID, gains, score); err != nil {
			logger.Log.Error("update progress", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	if hasSession {
		session, err := uc.advanceSession(ctx, sessionID, req.Round)
		if err != nil {
			logger.Log.Warn("advance session", zap.String("session_id", req.SessionID), zap.Error(err))
		} else {
			resp.Session = dto.NewSessionDTO(session)
		}
	}
	return resp, nil
}

func (uc *SimulationUsecase) recordDecision(ctx context.Context, userID, sessionID uuid.UUID, hasSession bool, scenario *simulation.Scenario, option simulation.Option, payload datatypes.JSON, fb simulation.Feedback, round, score int, gains map[string]int) {
	feedbackJSON, err := json.Marshal(fb)
	if err != nil {
		logger.Log.Warn("encode feedback", zap.Error(err))
	}
	d := &model.Decision{
		ScenarioID:     scenario.ID,
		ScenarioTitle:  scenario.Title,
		UserID:         userID,
		RoundNumber:    round,
		SelectedOption: option.ID,
		TaskPayload:    payload,
		AIFeedback:     datatypes.JSON(feedbackJSON),
		OutcomeScore:   score,
		SkillsGained:   datatypes.NewJSONType(gains),
	}
	if hasSession {
		d.SessionID = &sessionID
	}
	if err := uc.repos.Decisions.Create(ctx, d); err != nil {
		logger.Log.Error("store decision", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

// advanceSession moves an unfinished session past round, or completes it
// after the last one. A submission for a round the session has already left
// leaves it untouched, so retries do not skip rounds. round 0 means the
// session's current round.
func (uc *SimulationUsecase) advanceSession(ctx context.Context, id uuid.UUID, round int) (*model.SimulationSession, error) {
	session, err := uc.repos.Sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionCompleted {
		return session, nil
	}
	if round <= 0 {
		round = session.CurrentRound
	}
	if round != session.CurrentRound {
		logger.Log.Info("session already past submitted round",
			zap.String("session_id", id.String()), zap.Int("round", round), zap.Int("current_round", session.CurrentRound))
		return session, nil
	}

	fields := map[string]any{}
	if round >= session.TotalRounds {
		fields["status"] = model.SessionCompleted
		fields["progress"] = 100
	} else {
		next := round + 1
		fields["status"] = model.SessionOngoing
		fields["current_round"] = next
		fields["progress"] = int(math.Round(float64(next) / float64(session.TotalRounds) * 100))
	}

	updated, applied, err := uc.repos.Sessions.UpdateAtRound(ctx, id, round, fields)
	if err != nil {
		return nil, err
	}
	if applied && updated.Status == model.SessionCompleted {
		uc.invalidateSocialProof(ctx)
	}
	return updated, nil
}

// StartSession resumes the learner's ongoing session or opens a new one.
func (uc *SimulationUsecase) StartSession(ctx context.Context, req dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, invalidField("userId", "User ID is required")
	}
	if uc.repos == nil {
		return nil, ErrDatabaseUnavailable
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, invalidField("userId", "User ID must be a UUID")
	}

	existing, err := uc.repos.Sessions.FindOngoing(ctx, userID)
	if err == nil {
		return &dto.StartSessionResponse{
			SessionID:    existing.ID,
			Existing:     true,
			CurrentRound: max(existing.CurrentRound, 1),
			Progress:     existing.Progress,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find ongoing session: %w", err)
	}

	data, _ := json.Marshal(map[string]string{
		"career_path": req.CareerPath,
		"started_at":  time.Now().UTC().Format(time.RFC3339),
	})
	session := &model.SimulationSession{
		UserID:       userID,
		Title:        "Business Simulation - " + cmp.Or(req.CareerPath, "Entrepreneurship"),
		Description:  fmt.Sprintf("Strategic business challenges for %s development", cmp.Or(req.CareerPath, "entrepreneurial")),
		Status:       model.SessionOngoing,
		CurrentRound: 1,
		TotalRounds:  model.DefaultTotalRounds,
		SessionData:  datatypes.JSON(data),
	}
	if err := uc.repos.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &dto.StartSessionResponse{SessionID: session.ID, Progress: 0}, nil
}

// UpdateSession applies the given fields. Progress is kept within 0..100
// and completing a session sets it to 100.
func (uc *SimulationUsecase) UpdateSession(ctx context.Context, req dto.UpdateSessionRequest) (*dto.SessionDTO, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, invalidField("sessionId", "Session ID is required")
	}
	if uc.repos == nil {
		return nil, ErrDatabaseUnavailable
	}
	id, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, invalidField("sessionId", "Session ID must be a UUID")
	}

	fields := map[string]any{}
	if req.CurrentRound != nil {
		fields["current_round"] = max(*req.CurrentRound, 1)
	}
	if req.Progress != nil {
		fields["progress"] = max(0, min(100, *req.Progress))
	}
	completed := false
	if req.Status != nil && *req.Status != "" {
		if !model.ValidSessionStatus(*req.Status) {
			return nil, invalidField("status", "Status must be one of ongoing, completed, paused")
		}
		fields["status"] = *req.Status
		if *req.Status == model.SessionCompleted {
			fields["progress"] = 100
			completed = true
		}
	}

	session, err := uc.repos.Sessions.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if completed {
		uc.invalidateSocialProof(ctx)
	}
	return dto.NewSessionDTO(session), nil
}

func (uc *SimulationUsecase) ListSessions(ctx context.Context, rawUserID string, page, pageSize int) ([]dto.SessionDTO, *response.Pagination, error) {
	userID, err := uc.requireUser(rawUserID)
	if err != nil {
		return nil, nil, err
	}
	page, pageSize = response.NormalizePage(page, pageSize)
	sessions, total, err := uc.repos.Sessions.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]dto.SessionDTO, 0, len(sessions))
	for i := range sessions {
		out = append(out, *dto.NewSessionDTO(&sessions[i]))
	}
	return out, response.NewPagination(page, pageSize, total, len(out)), nil
}

func (uc *SimulationUsecase) ListProgress(ctx context.Context, rawUserID string) ([]dto.ProgressDTO, error) {
	userID, err := uc.requireUser(rawUserID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repos.Progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]dto.ProgressDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ProgressDTO{
			SkillName:               p.SkillName,
			SkillLevel:              p.SkillLevel,
			TotalScenariosCompleted: p.TotalScenariosCompleted,
			AverageScore:            p.AverageScore,
			LastUpdated:             p.LastUpdated,
		})
	}
	return out, nil
}

// SocialProofCount returns how many sessions matching title were completed,
// served from the cache when possible.
func (uc *SimulationUsecase) SocialProofCount(ctx context.Context, title string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, invalidField("title", "Scenario title is required")
	}
	if uc.repos == nil {
		return 0, ErrDatabaseUnavailable
	}

	lookup, cacheErr := uc.socialProof.Get(ctx, title)
	if cacheErr != nil {
		logger.Log.Warn("read social proof cache", zap.Error(cacheErr))
	} else if lookup.Hit {
		return lookup.Count, nil
	}

	count, err := uc.repos.Sessions.CountCompletedByTitle(ctx, title)
	if err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	if cacheErr == nil {
		if err := uc.socialProof.Set(ctx, title, lookup.Generation, count); err != nil {
			logger.Log.Warn("write social proof cache", zap.Error(err))
		}
	}
	return count, nil
}

func (uc *SimulationUsecase) invalidateSocialProof(ctx context.Context) {
	if err := uc.socialProof.Invalidate(ctx); err != nil {
		logger.Log.Warn("invalidate social proof cache", zap.Error(err))
	}
}

func (uc *SimulationUsecase) requireUser(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, invalidField("userId", "User ID is required")
	}
	if uc.repos == nil {
		return uuid.Nil, ErrDatabaseUnavailable
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidField("userId", "User ID must be a UUID")
	}
	return id, nil
}

// persistentID parses raw when there is a database to use it with.
func (uc *SimulationUsecase) persistentID(raw string) (uuid.UUID, bool) {
	if uc.repos == nil || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Log.Debug("ignoring malformed id", zap.String("id", raw))
		return uuid.Nil, false
	}
	return id, true
}

// skillLevelScore maps a profile skill level to the 0..100 scale the
// generators use.
func skillLevelScore(level string) int {
	level = strings.ToLower(level)
	switch {
	case level == "":
		return 40
	case strings.Contains(level, "advanced"):
		return 80
	case strings.Contains(level, "intermediate"):
		return 60
	default:
		return 30
	}
}

func usedTitles(exclude []string, history []simulation.HistoryEntry) map[string]struct{} {
	used := make(map[string]struct{}, len(exclude)+len(history))
	for _, t := range exclude {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			used[t] = struct{}{}
		}
	}
	for _, h := range history {
		if t := strings.ToLower(strings.TrimSpace(h.ScenarioType)); t != "" {
			used[t] = struct{}{}
		}
	}
	return used
}

func titleUsed(used map[string]struct{}, title string) bool {
	_, ok := used[strings.ToLower(strings.TrimSpace(title))]
	return ok
}
