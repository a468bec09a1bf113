package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPomodoroDuration is the classic 25-minute focus block.
	DefaultPomodoroDuration = 25
	// PomodoroAward is the fixed coin award for a completed session.
	PomodoroAward = 20
)

type PomodoroSession struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	StartTime time.Time  `gorm:"not null" json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  int        `gorm:"not null" json:"duration"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
}
