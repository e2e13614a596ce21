package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Decision records one round's submission. Rows are never updated.
type Decision struct {
	ID             uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID      *uuid.UUID                         `gorm:"type:uuid;index" json:"session_id"`
	ScenarioID     string                             `gorm:"type:varchar(64)" json:"scenario_id"`
	ScenarioTitle  string                             `gorm:"type:varchar(255)" json:"scenario_title"`
	UserID         uuid.UUID                          `gorm:"type:uuid;index" json:"user_id"`
	RoundNumber    int                                `json:"round_number"`
	SelectedOption string                             `gorm:"type:text" json:"selected_option"`
	TaskPayload    datatypes.JSON                     `json:"task_payload,omitempty"`
	AIFeedback     datatypes.JSON                     `json:"ai_feedback"`
	OutcomeScore   int                                `json:"outcome_score"`
	SkillsGained   datatypes.JSONType[map[string]int] `json:"skills_gained"`
	CreatedAt      time.Time                          `gorm:"index" json:"created_at"`
}

func (d *Decision) TableName() string {
	return "simulation_decisions"
}

func (d *Decision) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}
