package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskrewards/internal/domain"
)

func TestLedgerCreditRejectsNegative(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 10, false)
	uc := NewLedgerUseCase(store)

	err := uc.Credit(context.Background(), user.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Equal(t, 10, store.users[user.ID].Coins)

	require.NoError(t, uc.Credit(context.Background(), user.ID, 5))
	assert.Equal(t, 15, store.users[user.ID].Coins)
}

func TestLedgerDebit(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 10, false)
	uc := NewLedgerUseCase(store)

	err := uc.Debit(context.Background(), user.ID, 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 10, store.users[user.ID].Coins)

	require.NoError(t, uc.Debit(context.Background(), user.ID, 10))
	assert.Equal(t, 0, store.users[user.ID].Coins)
}

func TestLedgerSetPremiumRejectsRepeat(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewLedgerUseCase(store)

	require.NoError(t, uc.SetPremium(context.Background(), user.ID))
	assert.True(t, store.users[user.ID].IsPremium)

	err := uc.SetPremium(context.Background(), user.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPremium)
}
