package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskrewards/internal/domain"
)

func TestTaskCreateDefaults(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewTaskUseCase(taskRepo{store})

	task, err := uc.Create(context.Background(), user.ID, CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTaskReward, task.CoinsReward)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.False(t, task.Completed)
}

func TestTaskCreateValidation(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewTaskUseCase(taskRepo{store})

	negative := -5
	_, err := uc.Create(context.Background(), user.ID, CreateTaskInput{Title: "x", CoinsReward: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Create(context.Background(), user.ID, CreateTaskInput{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestTaskCompleteCreditsOnce(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewTaskUseCase(taskRepo{store})

	reward := 25
	task, err := uc.Create(context.Background(), user.ID, CreateTaskInput{Title: "x", CoinsReward: &reward})
	require.NoError(t, err)

	earned, err := uc.Complete(context.Background(), user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, earned)
	assert.Equal(t, 25, store.users[user.ID].Coins)

	// The second completion fails and credits nothing.
	_, err = uc.Complete(context.Background(), user.ID, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskAlreadyCompleted)
	assert.Equal(t, 25, store.users[user.ID].Coins)
}

func TestTaskOwnershipIsOpaque(t *testing.T) {
	store := newMemStore()
	alice := store.addUser("alice", 0, false)
	bob := store.addUser("bob", 0, false)
	uc := NewTaskUseCase(taskRepo{store})

	task, err := uc.Create(context.Background(), alice.ID, CreateTaskInput{Title: "x"})
	require.NoError(t, err)

	// Another user's task behaves exactly like a missing one.
	_, err = uc.Complete(context.Background(), bob.ID, task.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), bob.ID, task.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(context.Background(), bob.ID, task.ID, UpdateTaskInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Complete(context.Background(), alice.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskUpdateIsPartialAndCannotComplete(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewTaskUseCase(taskRepo{store})

	task, err := uc.Create(context.Background(), user.ID, CreateTaskInput{
		Title:       "original",
		Description: "desc",
		Category:    "work",
	})
	require.NoError(t, err)

	title := "renamed"
	updated, err := uc.Update(context.Background(), user.ID, task.ID, UpdateTaskInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, "work", updated.Category)

	// Editing after completion must not re-trigger the reward.
	_, err = uc.Complete(context.Background(), user.ID, task.ID)
	require.NoError(t, err)
	coins := store.users[user.ID].Coins

	_, err = uc.Update(context.Background(), user.ID, task.ID, UpdateTaskInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, coins, store.users[user.ID].Coins)
	assert.True(t, store.tasks[task.ID].Completed)
}

func TestTaskDelete(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice", 0, false)
	uc := NewTaskUseCase(taskRepo{store})

	task, err := uc.Create(context.Background(), user.ID, CreateTaskInput{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), user.ID, task.ID))

	tasks, err := uc.List(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
