package repository

import (
	"context"

	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CaseStudyRepository struct {
	db *gorm.DB
}

func NewCaseStudyRepository(db *gorm.DB) *CaseStudyRepository {
	return &CaseStudyRepository{db}
}

func (r *CaseStudyRepository) Create(ctx context.Context, c *model.CaseStudy) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Search returns the topK case studies nearest to embedding. An empty stage
// searches all stages.
func (r *CaseStudyRepository) Search(ctx context.Context, embedding pgvector.Vector, stage string, topK int) ([]model.CaseStudy, error) {
	var studies []model.CaseStudy

	// <-> is pgvector's L2 distance
	q := r.db.WithContext(ctx).Model(&model.CaseStudy{})
	if stage != "" {
		q = q.Where("stage = ?", stage)
	}
	err := q.Clauses(clause.OrderBy{
		Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []any{embedding}},
	}).Limit(topK).Find(&studies).Error

	return studies, err
}

func (r *CaseStudyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CaseStudy{}).Count(&count).Error
	return count, err
}

func (r *CaseStudyRepository) FindByCompany(ctx context.Context, company string) (*model.CaseStudy, error) {
	var c model.CaseStudy
	err := r.db.WithContext(ctx).First(&c, "company = ?", company).Error
	return &c, err
}
