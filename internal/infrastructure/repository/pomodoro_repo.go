package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskrewards/internal/domain"
)

type PomodoroRepository struct {
	db *gorm.DB
}

func NewPomodoroRepository(db *gorm.DB) *PomodoroRepository {
	return &PomodoroRepository{db: db}
}

func (r *PomodoroRepository) Create(ctx context.Context, session *domain.PomodoroSession) error {
	return translate(r.db.WithContext(ctx).Create(session).Error)
}

func (r *PomodoroRepository) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PomodoroSession, error) {
	var sessions []domain.PomodoroSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time desc").
		Limit(limit).
		Find(&sessions).Error
	return sessions, translate(err)
}

// Complete stamps the end time and credits the award in one transaction. A
// session that is already completed is rejected before any credit.
func (r *PomodoroRepository) Complete(ctx context.Context, userID, sessionID uuid.UUID, now time.Time, award int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session domain.PomodoroSession
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", sessionID, userID).
			First(&session).Error
		if err != nil {
			return translate(err)
		}
		if session.Completed {
			return domain.ErrSessionAlreadyCompleted
		}
		if err := tx.Model(&domain.PomodoroSession{}).
			Where("id = ?", session.ID).
			Updates(map[string]interface{}{
				"completed": true,
				"end_time":  now,
			}).Error; err != nil {
			return translate(err)
		}
		return creditUser(tx, userID, award)
	})
}
