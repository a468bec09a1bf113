package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

type HabitUseCase struct {
	habits HabitRepository
}

func NewHabitUseCase(hr HabitRepository) *HabitUseCase {
	return &HabitUseCase{habits: hr}
}

type CreateHabitInput struct {
	Name         string
	Description  string
	TargetDays   *int
	ReminderTime string
}

func (uc *HabitUseCase) Create(ctx context.Context, userID uuid.UUID, input CreateHabitInput) (*domain.Habit, error) {
	targetDays := 1
	if input.TargetDays != nil {
		if *input.TargetDays < 1 {
			return nil, domain.ErrInvalidTargetDays
		}
		targetDays = *input.TargetDays
	}

	if input.ReminderTime != "" {
		if _, err := time.Parse("15:04", input.ReminderTime); err != nil {
			return nil, domain.ErrInvalidReminder
		}
	}

	habit := &domain.Habit{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         input.Name,
		Description:  input.Description,
		TargetDays:   targetDays,
		ReminderTime: input.ReminderTime,
		CreatedAt:    time.Now(),
	}
	if err := uc.habits.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (uc *HabitUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	return uc.habits.ListByUser(ctx, userID)
}

// Complete advances the streak once per 24-hour window and returns the new
// streak together with the coins earned.
func (uc *HabitUseCase) Complete(ctx context.Context, userID, habitID uuid.UUID) (streak, earned int, err error) {
	return uc.habits.Complete(ctx, userID, habitID, time.Now())
}
