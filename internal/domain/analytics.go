package domain

import (
	"time"

	"github.com/google/uuid"
)

type Timeframe string

const (
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeAllTime Timeframe = "all-time"
)

// ParseTimeframe falls back to weekly for unknown values, matching the
// default of the leaderboard endpoint.
func ParseTimeframe(s string) Timeframe {
	switch Timeframe(s) {
	case TimeframeMonthly:
		return TimeframeMonthly
	case TimeframeAllTime:
		return TimeframeAllTime
	default:
		return TimeframeWeekly
	}
}

// WindowStart returns the lower bound of the aggregation window. The second
// return value is false for the unbounded all-time window.
func (t Timeframe) WindowStart(now time.Time) (time.Time, bool) {
	switch t {
	case TimeframeWeekly:
		return now.AddDate(0, 0, -7), true
	case TimeframeMonthly:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

type LeaderboardEntry struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	TasksCompleted int       `json:"tasks_completed"`
	TotalStreak    int       `json:"total_streak"`
	IsPremium      bool      `json:"is_premium"`
}

type TaskProgress struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type HabitProgress struct {
	HabitID           uuid.UUID `json:"habit_id"`
	Name              string    `json:"name"`
	Streak            int       `json:"streak"`
	TargetDays        int       `json:"target_days"`
	CompletionPercent float64   `json:"completion_percent"`
}

type PomodoroStats struct {
	TotalSessions        int     `json:"total_sessions"`
	TotalMinutes         int     `json:"total_minutes"`
	AverageSessionLength float64 `json:"average_session_length"`
}

type ProgressReport struct {
	Tasks    TaskProgress    `json:"tasks"`
	Habits   []HabitProgress `json:"habits"`
	Pomodoro PomodoroStats   `json:"pomodoro"`
}
