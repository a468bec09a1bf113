package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

type TaskUseCase struct {
	tasks TaskRepository
}

func NewTaskUseCase(tr TaskRepository) *TaskUseCase {
	return &TaskUseCase{tasks: tr}
}

type CreateTaskInput struct {
	Title       string
	Description string
	CoinsReward *int
	DueDate     *time.Time
	Priority    string
	Category    string
}

func (uc *TaskUseCase) Create(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	reward := domain.DefaultTaskReward
	if input.CoinsReward != nil {
		if *input.CoinsReward < 0 {
			return nil, domain.ErrInvalidAmount
		}
		reward = *input.CoinsReward
	}

	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority = domain.Priority(input.Priority)
		if !priority.Valid() {
			return nil, domain.ErrInvalidPriority
		}
	}

	task := &domain.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		CoinsReward: reward,
		DueDate:     input.DueDate,
		Priority:    priority,
		Category:    input.Category,
		CreatedAt:   time.Now(),
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (uc *TaskUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	return uc.tasks.ListByUser(ctx, userID)
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	CoinsReward *int
	DueDate     *time.Time
	Priority    *string
	Category    *string
}

// Update applies a partial edit. The completion flag is not reachable from
// here; only Complete can flip it.
func (uc *TaskUseCase) Update(ctx context.Context, userID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := uc.tasks.GetByOwner(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.CoinsReward != nil {
		if *input.CoinsReward < 0 {
			return nil, domain.ErrInvalidAmount
		}
		task.CoinsReward = *input.CoinsReward
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		priority := domain.Priority(*input.Priority)
		if !priority.Valid() {
			return nil, domain.ErrInvalidPriority
		}
		task.Priority = priority
	}
	if input.Category != nil {
		task.Category = *input.Category
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	return uc.tasks.Delete(ctx, userID, taskID)
}

// Complete marks the task done and returns the coins credited to the owner.
func (uc *TaskUseCase) Complete(ctx context.Context, userID, taskID uuid.UUID) (int, error) {
	return uc.tasks.Complete(ctx, userID, taskID)
}
