package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SessionOngoing   = "ongoing"
	SessionCompleted = "completed"
	SessionPaused    = "paused"

	DefaultTotalRounds = 5
)

// ValidSessionStatus reports whether s is one of the session states.
func ValidSessionStatus(s string) bool {
	switch s {
	case SessionOngoing, SessionCompleted, SessionPaused:
		return true
	}
	return false
}

type SimulationSession struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	Title        string         `gorm:"type:varchar(255)" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Status       string         `gorm:"type:varchar(20);index" json:"status"`
	CurrentRound int            `json:"current_round"`
	TotalRounds  int            `json:"total_rounds"`
	Progress     int            `json:"progress"`
	SessionData  datatypes.JSON `json:"session_data"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (s *SimulationSession) TableName() string {
	return "simulation_sessions"
}

func (s *SimulationSession) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	if s.Status == "" {
		s.Status = SessionOngoing
	}
	if s.TotalRounds == 0 {
		s.TotalRounds = DefaultTotalRounds
	}
	if s.CurrentRound == 0 {
		s.CurrentRound = 1
	}
	return nil
}
