package dto

import (
	"time"

	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/google/uuid"
)

type GenerateSimulationRequest struct {
	UserID                string   `json:"userId"`
	CareerPath            string   `json:"careerPath"`
	Round                 int      `json:"round"`
	SessionID             string   `json:"sessionId"`
	ExcludeScenarioIDs    []string `json:"excludeScenarioIds"`
	ExcludeScenarioTitles []string `json:"excludeScenarioTitles"`
}

type GenerateSimulationResponse struct {
	Simulation *simulation.Simulation `json:"simulation"`
	Context    simulation.Context     `json:"context"`
	Source     string                 `json:"source"`
}

type SubmitDecisionRequest struct {
	Option    *simulation.Option       `json:"option"`
	Task      *simulation.TaskResponse `json:"task"`
	Scenario  *simulation.Scenario     `json:"scenario"`
	Context   *simulation.Context      `json:"context"`
	UserID    string                   `json:"userId"`
	Round     int                      `json:"round"`
	SessionID string                   `json:"sessionId"`
}

type DecisionFeedback struct {
	AIFeedback   simulation.Feedback `json:"ai_feedback"`
	OutcomeScore int                 `json:"outcome_score"`
	SkillsGained map[string]int      `json:"skills_gained"`
}

type SubmitDecisionResponse struct {
	Feedback DecisionFeedback  `json:"feedback"`
	Result   simulation.Result `json:"result"`
	Session  *SessionDTO       `json:"session,omitempty"`
}

type StartSessionRequest struct {
	UserID     string `json:"userId"`
	CareerPath string `json:"careerPath"`
}

type StartSessionResponse struct {
	SessionID    uuid.UUID `json:"sessionId"`
	Existing     bool      `json:"existing,omitempty"`
	CurrentRound int       `json:"currentRound,omitempty"`
	Progress     int       `json:"progress"`
}

// UpdateSessionRequest leaves fields that are nil untouched.
type UpdateSessionRequest struct {
	SessionID    string  `json:"sessionId"`
	CurrentRound *int    `json:"currentRound"`
	Progress     *int    `json:"progress"`
	Status       *string `json:"status"`
}

type SessionDTO struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CurrentRound int       `json:"current_round"`
	TotalRounds  int       `json:"total_rounds"`
	Progress     int       `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewSessionDTO(s *model.SimulationSession) *SessionDTO {
	return &SessionDTO{
		ID:           s.ID,
		UserID:       s.UserID,
		Title:        s.Title,
		Description:  s.Description,
		Status:       s.Status,
		CurrentRound: s.CurrentRound,
		TotalRounds:  s.TotalRounds,
		Progress:     s.Progress,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type ProgressDTO struct {
	SkillName               string    `json:"skill_name"`
	SkillLevel              int       `json:"skill_level"`
	TotalScenariosCompleted int       `json:"total_scenarios_completed"`
	AverageScore            float64   `json:"average_score"`
	LastUpdated             time.Time `json:"last_updated"`
}

type QuizRequest struct {
	InterestArea string `json:"interestArea"`
	Difficulty   string `json:"difficulty"`
}
