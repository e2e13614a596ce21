package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GeneratedScenario is a model-written round kept for reuse by other
// learners with the same career path, difficulty and stage.
type GeneratedScenario struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string         `gorm:"type:varchar(255)" json:"title"`
	ScenarioData    datatypes.JSON `json:"scenario_data"`
	CareerPath      string         `gorm:"type:varchar(100);index:idx_scenario_pool" json:"career_path"`
	DifficultyLevel int            `gorm:"index:idx_scenario_pool" json:"difficulty_level"`
	BusinessStage   string         `gorm:"type:varchar(20);index:idx_scenario_pool" json:"business_stage"`
	UsageCount      int            `gorm:"not null;default:0" json:"usage_count"`
	LastUsedAt      *time.Time     `json:"last_used_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (g *GeneratedScenario) TableName() string {
	return "generated_scenarios"
}

func (g *GeneratedScenario) BeforeCreate(tx *gorm.DB) error {
	ensureID(&g.ID)
	return nil
}
