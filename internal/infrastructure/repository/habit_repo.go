package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskrewards/internal/domain"
)

type HabitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	return translate(r.db.WithContext(ctx).Create(habit).Error)
}

func (r *HabitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	var habits []domain.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&habits).Error
	return habits, translate(err)
}

// Complete applies the daily gate, bumps the streak and credits the capped
// award in one transaction. Locking the habit row keeps two simultaneous
// completions from both passing the gate against a stale last_completed.
func (r *HabitRepository) Complete(ctx context.Context, userID, habitID uuid.UUID, now time.Time) (int, int, error) {
	var streak, earned int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var habit domain.Habit
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", habitID, userID).
			First(&habit).Error
		if err != nil {
			return translate(err)
		}
		if !habit.CanComplete(now) {
			return domain.ErrHabitAlreadyCompletedToday
		}

		streak = habit.Streak + 1
		earned = domain.HabitAward(streak)

		if err := tx.Model(&domain.Habit{}).
			Where("id = ?", habit.ID).
			Updates(map[string]interface{}{
				"streak":         streak,
				"last_completed": now,
			}).Error; err != nil {
			return translate(err)
		}
		return creditUser(tx, userID, earned)
	})
	if err != nil {
		return 0, 0, err
	}
	return streak, earned, nil
}
