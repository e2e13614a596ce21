package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Progress struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_progress_user_skill" json:"user_id"`
	SkillName               string    `gorm:"type:varchar(100);uniqueIndex:idx_progress_user_skill" json:"skill_name"`
	SkillLevel              int       `json:"skill_level"`
	TotalScenariosCompleted int       `json:"total_scenarios_completed"`
	AverageScore            float64   `json:"average_score"`
	LastUpdated             time.Time `json:"last_updated"`
}

func (p *Progress) TableName() string {
	return "progress"
}

func (p *Progress) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
