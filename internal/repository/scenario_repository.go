package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PoolKey identifies the learners a generated scenario can be reused for.
type PoolKey struct {
	CareerPath      string
	DifficultyLevel int
	BusinessStage   string
}

type ScenarioRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewScenarioRepository(db *gorm.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db, now: time.Now}
}

func (r *ScenarioRepository) Create(ctx context.Context, s *model.GeneratedScenario) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScenarioRepository) keyed(ctx context.Context, key PoolKey) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.GeneratedScenario{}).
		Where("career_path = ? AND difficulty_level = ? AND business_stage = ?",
			key.CareerPath, key.DifficultyLevel, key.BusinessStage)
}

func (r *ScenarioRepository) fresh(q *gorm.DB, ttl time.Duration) *gorm.DB {
	if ttl > 0 {
		q = q.Where("created_at > ?", r.now().Add(-ttl))
	}
	return q
}

// FindReusable returns the least used unexpired scenario for key whose
// title is not in excludeTitles, or gorm.ErrRecordNotFound.
func (r *ScenarioRepository) FindReusable(ctx context.Context, key PoolKey, ttl time.Duration, excludeTitles []string) (*model.GeneratedScenario, error) {
	q := r.fresh(r.keyed(ctx, key), ttl)
	if len(excludeTitles) > 0 {
		q = q.Where("LOWER(title) NOT IN ?", lowerAll(excludeTitles))
	}
	var s model.GeneratedScenario
	err := q.Order("usage_count ASC").Order("created_at ASC").First(&s).Error
	return &s, err
}

// CountByKey counts the unexpired scenarios pooled under key.
func (r *ScenarioRepository) CountByKey(ctx context.Context, key PoolKey, ttl time.Duration) (int64, error) {
	var count int64
	err := r.fresh(r.keyed(ctx, key), ttl).Count(&count).Error
	return count, err
}

func (r *ScenarioRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.GeneratedScenario{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"usage_count":  gorm.Expr("usage_count + 1"),
			"last_used_at": r.now(),
		}).Error
}

// Prune deletes scenarios under key that are older than ttl, then the
// oldest ones beyond capacity. It returns the number of rows removed.
func (r *ScenarioRepository) Prune(ctx context.Context, key PoolKey, capacity int, ttl time.Duration) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := tx.Where("career_path = ? AND difficulty_level = ? AND business_stage = ?",
			key.CareerPath, key.DifficultyLevel, key.BusinessStage)

		if ttl > 0 {
			res := base.Session(&gorm.Session{}).
				Where("created_at <= ?", r.now().Add(-ttl)).
				Delete(&model.GeneratedScenario{})
			if res.Error != nil {
				return res.Error
			}
			removed += res.RowsAffected
		}

		if capacity <= 0 {
			return nil
		}
		var keep []uuid.UUID
		if err := base.Session(&gorm.Session{}).Model(&model.GeneratedScenario{}).
			Order("created_at DESC").
			Limit(capacity).
			Pluck("id", &keep).Error; err != nil {
			return err
		}
		if len(keep) < capacity {
			return nil
		}
		res := base.Session(&gorm.Session{}).
			Where("id NOT IN ?", keep).
			Delete(&model.GeneratedScenario{})
		if res.Error != nil {
			return res.Error
		}
		removed += res.RowsAffected
		return nil
	})
	return removed, err
}

// TitlesByIDs maps scenario ids to their titles. Unknown ids are skipped.
func (r *ScenarioRepository) TitlesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		ID    uuid.UUID
		Title string
	}
	if err := r.db.WithContext(ctx).Model(&model.GeneratedScenario{}).
		Select("id", "title").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.Title
	}
	return out, nil
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
