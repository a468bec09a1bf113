package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

const defaultLeaderboardLimit = 10

// AnalyticsUseCase derives progress and leaderboard views. It only reads.
type AnalyticsUseCase struct {
	repo  AnalyticsRepository
	cache LeaderboardCache
}

func NewAnalyticsUseCase(ar AnalyticsRepository, lc LeaderboardCache) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: ar, cache: lc}
}

func windowStart(timeframe domain.Timeframe, now time.Time) *time.Time {
	start, bounded := timeframe.WindowStart(now)
	if !bounded {
		return nil
	}
	return &start
}

func (uc *AnalyticsUseCase) Progress(ctx context.Context, userID uuid.UUID, timeframe domain.Timeframe) (*domain.ProgressReport, error) {
	since := windowStart(timeframe, time.Now())

	total, completed, err := uc.repo.TaskStats(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	report := &domain.ProgressReport{
		Tasks: domain.TaskProgress{Total: total, Completed: completed},
	}
	if total > 0 {
		report.Tasks.CompletionRate = float64(completed) / float64(total)
	}

	habits, err := uc.repo.HabitsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, habit := range habits {
		// A non-positive target would divide by zero; such habits are
		// excluded from the ratio view.
		if habit.TargetDays <= 0 {
			continue
		}
		report.Habits = append(report.Habits, domain.HabitProgress{
			HabitID:           habit.ID,
			Name:              habit.Name,
			Streak:            habit.Streak,
			TargetDays:        habit.TargetDays,
			CompletionPercent: float64(habit.Streak) / float64(habit.TargetDays) * 100,
		})
	}

	sessions, minutes, err := uc.repo.PomodoroTotals(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	report.Pomodoro = domain.PomodoroStats{
		TotalSessions: sessions,
		TotalMinutes:  minutes,
	}
	if sessions > 0 {
		report.Pomodoro.AverageSessionLength = float64(minutes) / float64(sessions)
	}

	return report, nil
}

// Leaderboard ranks every user by tasks completed inside the window, with
// total habit streak as the tie-breaker. The merge over per-user aggregates
// is a left join from the user list: users with no qualifying tasks still
// appear with a zero count.
func (uc *AnalyticsUseCase) Leaderboard(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	if entries, ok := uc.cache.Get(ctx, timeframe, limit); ok {
		return entries, nil
	}

	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	taskCounts, err := uc.repo.CompletedTaskCounts(ctx, windowStart(timeframe, time.Now()))
	if err != nil {
		return nil, err
	}
	streaks, err := uc.repo.StreakTotals(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, domain.LeaderboardEntry{
			UserID:         user.ID,
			Username:       user.Username,
			TasksCompleted: taskCounts[user.ID],
			TotalStreak:    streaks[user.ID],
			IsPremium:      user.IsPremium,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TasksCompleted != entries[j].TasksCompleted {
			return entries[i].TasksCompleted > entries[j].TasksCompleted
		}
		if entries[i].TotalStreak != entries[j].TotalStreak {
			return entries[i].TotalStreak > entries[j].TotalStreak
		}
		return entries[i].Username < entries[j].Username
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	uc.cache.Set(ctx, timeframe, limit, entries)
	return entries, nil
}
