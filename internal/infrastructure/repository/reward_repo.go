package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskrewards/internal/domain"
)

type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// ListVisible returns the system catalog plus the user's own custom rewards.
func (r *RewardRepository) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error) {
	var rewards []domain.Reward
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("coins_cost asc").
		Find(&rewards).Error
	return rewards, translate(err)
}

// GetVisible resolves a reward the user is allowed to see. Another user's
// custom reward is indistinguishable from a missing one.
func (r *RewardRepository) GetVisible(ctx context.Context, userID, rewardID uuid.UUID) (*domain.Reward, error) {
	var reward domain.Reward
	err := r.db.WithContext(ctx).
		Where("id = ? AND (user_id = ? OR user_id IS NULL)", rewardID, userID).
		First(&reward).Error
	if err != nil {
		return nil, translate(err)
	}
	return &reward, nil
}

func (r *RewardRepository) Create(ctx context.Context, reward *domain.Reward) error {
	return translate(r.db.WithContext(ctx).Create(reward).Error)
}

var defaultSystemRewards = []domain.Reward{
	{Name: "Coffee break", Description: "Treat yourself to a proper coffee", CoinsCost: 50},
	{Name: "Movie night", Description: "An evening off with a film of your choice", CoinsCost: 150},
	{Name: "Lazy morning", Description: "Sleep in guilt-free", CoinsCost: 200},
	{Name: "New book", Description: "Pick up that book on your wishlist", CoinsCost: 300, IsPremium: true},
	{Name: "Day trip", Description: "A full day away from the desk", CoinsCost: 500, IsPremium: true},
}

// SeedDefaults inserts the system catalog on first boot against an empty
// store. A non-empty catalog is left untouched.
func (r *RewardRepository) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Reward{}).
		Where("user_id IS NULL").
		Count(&count).Error; err != nil {
		return translate(err)
	}
	if count > 0 {
		return nil
	}
	rewards := make([]domain.Reward, len(defaultSystemRewards))
	copy(rewards, defaultSystemRewards)
	return translate(r.db.WithContext(ctx).Create(&rewards).Error)
}
