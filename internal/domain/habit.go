package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	habitCoinsPerStreak = 5
	habitCoinsCap       = 50
)

type Habit struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string     `gorm:"not null;size:200" json:"name"`
	Description   string     `json:"description"`
	Streak        int        `gorm:"not null;default:0" json:"streak"`
	TargetDays    int        `gorm:"not null;default:1" json:"target_days"`
	ReminderTime  string     `gorm:"size:5" json:"reminder_time,omitempty"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CanComplete reports whether the habit is eligible for another completion.
// A habit may be completed once per full 24-hour period measured from the
// previous completion, not per calendar day. Streaks never decay on missed
// days; only re-completion inside the window is blocked.
func (h *Habit) CanComplete(now time.Time) bool {
	if h.LastCompleted == nil {
		return true
	}
	return now.Sub(*h.LastCompleted) >= 24*time.Hour
}

// HabitAward is the coin award for reaching the given streak, capped at 50.
func HabitAward(streak int) int {
	coins := streak * habitCoinsPerStreak
	if coins > habitCoinsCap {
		return habitCoinsCap
	}
	return coins
}
