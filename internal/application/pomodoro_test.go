package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskrewards/internal/domain"
)

func TestPomodoroStart(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewPomodoroUseCase(pomodoroRepo{store})

	// No duration given: the classic 25-minute default.
	session, err := uc.Start(context.Background(), user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPomodoroDuration, session.Duration)
	assert.False(t, session.Completed)
	assert.Nil(t, session.EndTime)

	negative := -10
	_, err = uc.Start(context.Background(), user.ID, &negative)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	// An explicit zero is a bad request, not a shorthand for the default.
	zero := 0
	_, err = uc.Start(context.Background(), user.ID, &zero)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestPomodoroCompleteCreditsOnce(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewPomodoroUseCase(pomodoroRepo{store})

	minutes := 25
	session, err := uc.Start(context.Background(), user.ID, &minutes)
	require.NoError(t, err)

	earned, err := uc.Complete(context.Background(), user.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PomodoroAward, earned)
	assert.Equal(t, domain.PomodoroAward, store.users[user.ID].Coins)
	assert.NotNil(t, store.sessions[session.ID].EndTime)

	// Re-completing a finished session must not credit again.
	_, err = uc.Complete(context.Background(), user.ID, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyCompleted)
	assert.Equal(t, domain.PomodoroAward, store.users[user.ID].Coins)
}

func TestPomodoroHistory(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewPomodoroUseCase(pomodoroRepo{store})

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		session, err := uc.Start(context.Background(), user.ID, nil)
		require.NoError(t, err)
		store.sessions[session.ID].StartTime = base.Add(time.Duration(i) * time.Minute)
	}

	sessions, err := uc.History(context.Background(), user.ID, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 10)

	// Most recent first.
	for i := 1; i < len(sessions); i++ {
		assert.True(t, sessions[i-1].StartTime.After(sessions[i].StartTime))
	}
}
