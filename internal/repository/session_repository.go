package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/fadilmartias/bizsim/internal/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db}
}

func (r *SessionRepository) Create(ctx context.Context, session *model.SimulationSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SimulationSession, error) {
	var s model.SimulationSession
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

// FindOngoing returns the user's most recent ongoing session.
func (r *SessionRepository) FindOngoing(ctx context.Context, userID uuid.UUID) (*model.SimulationSession, error) {
	var s model.SimulationSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.SessionOngoing).
		Order("created_at DESC").
		First(&s).Error
	return &s, err
}

// Update applies fields to the session and returns the stored row. An
// unknown id yields gorm.ErrRecordNotFound.
func (r *SessionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.SimulationSession, error) {
	db := r.db.WithContext(ctx)
	if len(fields) > 0 {
		res := db.Model(&model.SimulationSession{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// UpdateAtRound applies fields only while the session is unfinished and
// still at round. applied is false when another writer got there first.
func (r *SessionRepository) UpdateAtRound(ctx context.Context, id uuid.UUID, round int, fields map[string]any) (session *model.SimulationSession, applied bool, err error) {
	res := r.db.WithContext(ctx).Model(&model.SimulationSession{}).
		Where("id = ? AND current_round = ? AND status <> ?", id, round, model.SessionCompleted).
		Updates(fields)
	if res.Error != nil {
		return nil, false, res.Error
	}
	session, err = r.FindByID(ctx, id)
	return session, res.RowsAffected > 0, err
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]model.SimulationSession, int64, error) {
	page, pageSize = response.NormalizePage(page, pageSize)
	q := r.db.WithContext(ctx).Model(&model.SimulationSession{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []model.SimulationSession
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&sessions).Error
	return sessions, total, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CountCompletedByTitle counts completed sessions whose title contains
// title, ignoring case.
func (r *SessionRepository) CountCompletedByTitle(ctx context.Context, title string) (int64, error) {
	pattern := "%" + strings.ToLower(likeEscaper.Replace(title)) + "%"
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SimulationSession{}).
		Where("status = ? AND LOWER(title) LIKE ? ESCAPE '\\'", model.SessionCompleted, pattern).
		Count(&count).Error
	return count, err
}
