package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

type RewardUseCase struct {
	rewards RewardRepository
	users   UserRepository
	ledger  *LedgerUseCase
}

func NewRewardUseCase(rr RewardRepository, ur UserRepository, lu *LedgerUseCase) *RewardUseCase {
	return &RewardUseCase{rewards: rr, users: ur, ledger: lu}
}

func (uc *RewardUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error) {
	return uc.rewards.ListVisible(ctx, userID)
}

type CreateRewardInput struct {
	Name        string
	Description string
	CoinsCost   int
	IsPremium   bool
}

// CreateCustom adds a personal reward to the catalog; custom rewards are a
// premium entitlement.
func (uc *RewardUseCase) CreateCustom(ctx context.Context, userID uuid.UUID, input CreateRewardInput) (*domain.Reward, error) {
	// Input validation comes before any storage access.
	if input.CoinsCost < 0 {
		return nil, domain.ErrInvalidAmount
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsPremium {
		return nil, domain.ErrPremiumRequired
	}

	owner := userID
	reward := &domain.Reward{
		ID:          uuid.New(),
		UserID:      &owner,
		Name:        input.Name,
		Description: input.Description,
		CoinsCost:   input.CoinsCost,
		IsPremium:   input.IsPremium,
		CreatedAt:   time.Now(),
	}
	if err := uc.rewards.Create(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// Redeem spends coins against a reward. Premium gating is checked before the
// debit, and the debit itself is atomic, so a failed redemption never
// touches the balance.
func (uc *RewardUseCase) Redeem(ctx context.Context, userID, rewardID uuid.UUID) (remaining int, err error) {
	reward, err := uc.rewards.GetVisible(ctx, userID, rewardID)
	if err != nil {
		return 0, err
	}

	if reward.IsPremium {
		user, err := uc.users.GetByID(ctx, userID)
		if err != nil {
			return 0, err
		}
		if !user.IsPremium {
			return 0, domain.ErrPremiumRequired
		}
	}

	if err := uc.ledger.Debit(ctx, userID, reward.CoinsCost); err != nil {
		return 0, err
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Coins, nil
}
