package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserPreferences struct {
	Industry         string `json:"industry,omitempty"`
	MarketConditions string `json:"market_conditions,omitempty"`
}

// User is created at signup elsewhere and only read here.
type User struct {
	ID          uuid.UUID                           `gorm:"type:uuid;primaryKey" json:"id"`
	CareerPath  string                              `gorm:"type:varchar(100)" json:"career_path"`
	Location    string                              `gorm:"type:varchar(255)" json:"location"`
	Industry    string                              `gorm:"type:varchar(100)" json:"industry"`
	SkillLevel  string                              `gorm:"type:varchar(20)" json:"skill_level"` // beginner, intermediate, advanced
	Preferences datatypes.JSONType[UserPreferences] `json:"preferences"`
	CreatedAt   time.Time                           `json:"created_at"`
	UpdatedAt   time.Time                           `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
