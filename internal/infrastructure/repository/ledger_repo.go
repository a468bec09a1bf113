package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskrewards/internal/domain"
)

// LedgerRepository is the only repository that touches the coins and
// is_premium columns. Completion transactions in the task, habit and
// pomodoro repositories credit through creditUser on their own tx handle so
// the award commits or rolls back together with the completion flag.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// creditUser adds amount to the balance inside the caller's transaction.
// Single-statement arithmetic keeps concurrent credits from losing updates.
func creditUser(tx *gorm.DB, userID uuid.UUID, amount int) error {
	result := tx.Model(&domain.User{}).
		Where("id = ?", userID).
		Update("coins", gorm.Expr("coins + ?", amount))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LedgerRepository) Credit(ctx context.Context, userID uuid.UUID, amount int) error {
	return creditUser(r.db.WithContext(ctx), userID, amount)
}

// Debit decrements the balance only when it covers the amount. The check and
// the decrement are one conditional UPDATE, so two concurrent redemptions
// against a balance sufficient for only one cannot both pass.
func (r *LedgerRepository) Debit(ctx context.Context, userID uuid.UUID, amount int) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND coins >= ?", userID, amount).
		Update("coins", gorm.Expr("coins - ?", amount))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&domain.User{}).
			Where("id = ?", userID).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientFunds
	}
	return nil
}

// SetPremium flips the premium flag. A second upgrade is rejected.
func (r *LedgerRepository) SetPremium(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND is_premium = ?", userID, false).
		Update("is_premium", true)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&domain.User{}).
			Where("id = ?", userID).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrAlreadyPremium
	}
	return nil
}
