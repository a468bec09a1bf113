package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

// Collaborator interfaces the usecases depend on. The gorm implementations
// live in internal/infrastructure/repository; tests substitute in-memory
// fakes.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type LedgerRepository interface {
	Credit(ctx context.Context, userID uuid.UUID, amount int) error
	Debit(ctx context.Context, userID uuid.UUID, amount int) error
	SetPremium(ctx context.Context, userID uuid.UUID) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
	GetByOwner(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
	Complete(ctx context.Context, userID, taskID uuid.UUID) (int, error)
}

type HabitRepository interface {
	Create(ctx context.Context, habit *domain.Habit) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	Complete(ctx context.Context, userID, habitID uuid.UUID, now time.Time) (streak, earned int, err error)
}

type PomodoroRepository interface {
	Create(ctx context.Context, session *domain.PomodoroSession) error
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PomodoroSession, error)
	Complete(ctx context.Context, userID, sessionID uuid.UUID, now time.Time, award int) error
}

type RewardRepository interface {
	ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error)
	GetVisible(ctx context.Context, userID, rewardID uuid.UUID) (*domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) error
}

type AnalyticsRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CompletedTaskCounts(ctx context.Context, since *time.Time) (map[uuid.UUID]int, error)
	StreakTotals(ctx context.Context) (map[uuid.UUID]int, error)
	TaskStats(ctx context.Context, userID uuid.UUID, since *time.Time) (total, completed int, err error)
	HabitsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	PomodoroTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (sessions, minutes int, err error)
}

type TokenCache interface {
	SaveRefresh(ctx context.Context, userID, refreshToken string) error
	CheckRefresh(ctx context.Context, refreshToken string) (string, error)
	DeleteRefresh(ctx context.Context, refreshToken string) error
}

type LeaderboardCache interface {
	Get(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.LeaderboardEntry, bool)
	Set(ctx context.Context, timeframe domain.Timeframe, limit int, entries []domain.LeaderboardEntry)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenManager interface {
	Generate(userID string) (access, refresh string, err error)
	ValidateAccessToken(token string) (string, error)
	ValidateRefreshToken(token string) (string, error)
}
