package repository

import (
	"context"

	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DecisionRepository struct {
	db *gorm.DB
}

func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db}
}

func (r *DecisionRepository) Create(ctx context.Context, d *model.Decision) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// RecentByUser returns the user's latest decisions, newest first.
func (r *DecisionRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Decision, error) {
	var decisions []model.Decision
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&decisions).Error
	return decisions, err
}
