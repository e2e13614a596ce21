package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db}
}

// Upsert adds gains to the user's skill levels and folds score into each
// skill's running average, one statement per skill. Concurrent submissions
// for the same skill never lose an update.
func (r *ProgressRepository) Upsert(ctx context.Context, userID uuid.UUID, gains map[string]int, score int) error {
	if len(gains) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]model.Progress, 0, len(gains))
	for skill, points := range gains {
		rows = append(rows, model.Progress{
			UserID:                  userID,
			SkillName:               skill,
			SkillLevel:              points,
			TotalScenariosCompleted: 1,
			AverageScore:            float64(score),
			LastUpdated:             now,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "skill_name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"skill_level":               gorm.Expr("progress.skill_level + excluded.skill_level"),
			"total_scenarios_completed": gorm.Expr("progress.total_scenarios_completed + 1"),
			"average_score": gorm.Expr("(progress.average_score * progress.total_scenarios_completed + excluded.average_score) / " +
				"(progress.total_scenarios_completed + 1)"),
			"last_updated": gorm.Expr("excluded.last_updated"),
		}),
	}).Create(&rows).Error
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Progress, error) {
	var progress []model.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("skill_level DESC").
		Order("skill_name ASC").
		Find(&progress).Error
	return progress, err
}
