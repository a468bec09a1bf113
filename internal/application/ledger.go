package application

import (
	"context"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

// LedgerUseCase is the single entry point for balance and premium-flag
// mutations that are not part of a completion transaction.
type LedgerUseCase struct {
	ledger LedgerRepository
}

func NewLedgerUseCase(lr LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledger: lr}
}

// Credit rejects negative amounts instead of clamping them.
func (uc *LedgerUseCase) Credit(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount < 0 {
		return domain.ErrInvalidAmount
	}
	return uc.ledger.Credit(ctx, userID, amount)
}

func (uc *LedgerUseCase) Debit(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount < 0 {
		return domain.ErrInvalidAmount
	}
	return uc.ledger.Debit(ctx, userID, amount)
}

func (uc *LedgerUseCase) SetPremium(ctx context.Context, userID uuid.UUID) error {
	return uc.ledger.SetPremium(ctx, userID)
}
