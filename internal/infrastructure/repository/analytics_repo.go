package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskrewards/internal/domain"
)

// AnalyticsRepository serves the read-only aggregation queries. It never
// mutates anything; the usecase layer joins its per-user aggregates.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Select("id", "username", "is_premium").
		Find(&users).Error
	return users, translate(err)
}

type userCount struct {
	UserID uuid.UUID
	Total  int
}

// CompletedTaskCounts groups completed tasks per user, filtered by
// created_at when a window start is given.
func (r *AnalyticsRepository) CompletedTaskCounts(ctx context.Context, since *time.Time) (map[uuid.UUID]int, error) {
	query := r.db.WithContext(ctx).Model(&domain.Task{}).
		Select("user_id, count(*) as total").
		Where("completed = ?", true)
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	var rows []userCount
	if err := query.Group("user_id").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Total
	}
	return counts, nil
}

// StreakTotals sums habit streaks per user. Streak totals are deliberately
// not window-filtered: a streak is a present-state figure, not an event log.
func (r *AnalyticsRepository) StreakTotals(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []userCount
	err := r.db.WithContext(ctx).Model(&domain.Habit{}).
		Select("user_id, coalesce(sum(streak), 0) as total").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	totals := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		totals[row.UserID] = row.Total
	}
	return totals, nil
}

func (r *AnalyticsRepository) TaskStats(ctx context.Context, userID uuid.UUID, since *time.Time) (total, completed int, err error) {
	base := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&domain.Task{}).
			Where("user_id = ?", userID)
		if since != nil {
			query = query.Where("created_at >= ?", *since)
		}
		return query
	}
	var all, done int64
	if err = base().Count(&all).Error; err != nil {
		return 0, 0, translate(err)
	}
	if err = base().Where("completed = ?", true).Count(&done).Error; err != nil {
		return 0, 0, translate(err)
	}
	return int(all), int(done), nil
}

func (r *AnalyticsRepository) HabitsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	var habits []domain.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&habits).Error
	return habits, translate(err)
}

type pomodoroTotals struct {
	Sessions int
	Minutes  int
}

func (r *AnalyticsRepository) PomodoroTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (sessions, minutes int, err error) {
	query := r.db.WithContext(ctx).Model(&domain.PomodoroSession{}).
		Select("count(*) as sessions, coalesce(sum(duration), 0) as minutes").
		Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("start_time >= ?", *since)
	}
	var totals pomodoroTotals
	if err = query.Scan(&totals).Error; err != nil {
		return 0, 0, translate(err)
	}
	return totals.Sessions, totals.Minutes, nil
}
