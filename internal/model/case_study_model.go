package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// CaseStudy is a real company story offered as a worked example in feedback.
type CaseStudy struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Company   string          `gorm:"type:varchar(255)" json:"company"`
	Stage     string          `gorm:"type:varchar(20);index" json:"stage"`
	Situation string          `gorm:"type:text" json:"situation"`
	Decision  string          `gorm:"type:text" json:"decision"`
	Outcome   string          `gorm:"type:text" json:"outcome"`
	Lesson    string          `gorm:"type:text" json:"lesson"`
	Embedding pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (c *CaseStudy) TableName() string {
	return "case_studies"
}

func (c *CaseStudy) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// EmbeddingText is the text embedded for similarity search.
func (c *CaseStudy) EmbeddingText() string {
	return c.Company + ": " + c.Situation + " " + c.Decision + " " + c.Outcome
}
