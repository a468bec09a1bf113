package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a catalog item redeemable for coins. A nil UserID marks a
// system-wide reward shared by every user; custom rewards belong to the
// premium user who created them.
type Reward struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name        string     `gorm:"not null;size:200" json:"name"`
	Description string     `json:"description"`
	CoinsCost   int        `gorm:"not null" json:"coins_cost"`
	IsPremium   bool       `gorm:"not null;default:false" json:"is_premium"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r *Reward) System() bool {
	return r.UserID == nil
}
