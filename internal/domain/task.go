package domain

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DefaultTaskReward is the coin award attached to a task when the creator
// does not set one.
const DefaultTaskReward = 10

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string     `gorm:"not null;size:200" json:"title"`
	Description string     `json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CoinsReward int        `gorm:"not null;default:10" json:"coins_reward"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `gorm:"size:20;default:'medium'" json:"priority"`
	Category    string     `gorm:"size:50" json:"category,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
