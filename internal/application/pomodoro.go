package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

const defaultHistoryLimit = 10

type PomodoroUseCase struct {
	sessions PomodoroRepository
}

func NewPomodoroUseCase(pr PomodoroRepository) *PomodoroUseCase {
	return &PomodoroUseCase{sessions: pr}
}

// Start opens a session. A nil duration falls back to the default length;
// an explicit non-positive value is rejected.
func (uc *PomodoroUseCase) Start(ctx context.Context, userID uuid.UUID, duration *int) (*domain.PomodoroSession, error) {
	minutes := domain.DefaultPomodoroDuration
	if duration != nil {
		if *duration <= 0 {
			return nil, domain.ErrInvalidDuration
		}
		minutes = *duration
	}

	session := &domain.PomodoroSession{
		ID:        uuid.New(),
		UserID:    userID,
		StartTime: time.Now(),
		Duration:  minutes,
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Complete closes the session and credits the fixed award. Completing an
// already completed session is rejected before any credit.
func (uc *PomodoroUseCase) Complete(ctx context.Context, userID, sessionID uuid.UUID) (int, error) {
	err := uc.sessions.Complete(ctx, userID, sessionID, time.Now(), domain.PomodoroAward)
	if err != nil {
		return 0, err
	}
	return domain.PomodoroAward, nil
}

func (uc *PomodoroUseCase) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PomodoroSession, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return uc.sessions.History(ctx, userID, limit)
}
