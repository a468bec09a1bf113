package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:80" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null;size:120" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Coins     int       `gorm:"not null;default:0" json:"coins"`
	IsPremium bool      `gorm:"not null;default:false" json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
