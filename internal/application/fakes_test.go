package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

// memStore is an in-memory stand-in for the gorm repositories. It implements
// every repository interface and honors the same contracts: ownership checks,
// completion guards and conditional balance arithmetic.
type memStore struct {
	users    map[uuid.UUID]*domain.User
	tasks    map[uuid.UUID]*domain.Task
	habits   map[uuid.UUID]*domain.Habit
	sessions map[uuid.UUID]*domain.PomodoroSession
	rewards  map[uuid.UUID]*domain.Reward
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*domain.User),
		tasks:    make(map[uuid.UUID]*domain.Task),
		habits:   make(map[uuid.UUID]*domain.Habit),
		sessions: make(map[uuid.UUID]*domain.PomodoroSession),
		rewards:  make(map[uuid.UUID]*domain.Reward),
	}
}

func (s *memStore) addUser(username string, coins int, premium bool) *domain.User {
	user := &domain.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@example.com",
		Coins:     coins,
		IsPremium: premium,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user
	return user
}

// UserRepository

func (s *memStore) Create(ctx context.Context, user *domain.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) Update(ctx context.Context, user *domain.User) error {
	stored, ok := s.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Username = user.Username
	stored.Email = user.Email
	stored.Password = user.Password
	return nil
}

// LedgerRepository

func (s *memStore) Credit(ctx context.Context, userID uuid.UUID, amount int) error {
	user, ok := s.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	user.Coins += amount
	return nil
}

func (s *memStore) Debit(ctx context.Context, userID uuid.UUID, amount int) error {
	user, ok := s.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	if user.Coins < amount {
		return domain.ErrInsufficientFunds
	}
	user.Coins -= amount
	return nil
}

func (s *memStore) SetPremium(ctx context.Context, userID uuid.UUID) error {
	user, ok := s.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	if user.IsPremium {
		return domain.ErrAlreadyPremium
	}
	user.IsPremium = true
	return nil
}

// taskRepo wraps memStore so the Create methods of different entity
// repositories do not collide on the interface.
type taskRepo struct{ s *memStore }

func (r taskRepo) Create(ctx context.Context, task *domain.Task) error {
	r.s.tasks[task.ID] = task
	return nil
}

func (r taskRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	var tasks []domain.Task
	for _, t := range r.s.tasks {
		if t.UserID == userID {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (r taskRepo) GetByOwner(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	task, ok := r.s.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (r taskRepo) Update(ctx context.Context, task *domain.Task) error {
	stored, ok := r.s.tasks[task.ID]
	if !ok || stored.UserID != task.UserID {
		return domain.ErrNotFound
	}
	completed := stored.Completed
	*stored = *task
	stored.Completed = completed
	return nil
}

func (r taskRepo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	task, ok := r.s.tasks[taskID]
	if !ok || task.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.s.tasks, taskID)
	return nil
}

func (r taskRepo) Complete(ctx context.Context, userID, taskID uuid.UUID) (int, error) {
	task, ok := r.s.tasks[taskID]
	if !ok || task.UserID != userID {
		return 0, domain.ErrNotFound
	}
	if task.Completed {
		return 0, domain.ErrTaskAlreadyCompleted
	}
	task.Completed = true
	if err := r.s.Credit(ctx, userID, task.CoinsReward); err != nil {
		return 0, err
	}
	return task.CoinsReward, nil
}

type habitRepo struct{ s *memStore }

func (r habitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	r.s.habits[habit.ID] = habit
	return nil
}

func (r habitRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	var habits []domain.Habit
	for _, h := range r.s.habits {
		if h.UserID == userID {
			habits = append(habits, *h)
		}
	}
	return habits, nil
}

func (r habitRepo) Complete(ctx context.Context, userID, habitID uuid.UUID, now time.Time) (int, int, error) {
	habit, ok := r.s.habits[habitID]
	if !ok || habit.UserID != userID {
		return 0, 0, domain.ErrNotFound
	}
	if !habit.CanComplete(now) {
		return 0, 0, domain.ErrHabitAlreadyCompletedToday
	}
	habit.Streak++
	habit.LastCompleted = &now
	earned := domain.HabitAward(habit.Streak)
	if err := r.s.Credit(ctx, userID, earned); err != nil {
		return 0, 0, err
	}
	return habit.Streak, earned, nil
}

type pomodoroRepo struct{ s *memStore }

func (r pomodoroRepo) Create(ctx context.Context, session *domain.PomodoroSession) error {
	r.s.sessions[session.ID] = session
	return nil
}

func (r pomodoroRepo) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PomodoroSession, error) {
	var sessions []domain.PomodoroSession
	for _, sess := range r.s.sessions {
		if sess.UserID == userID {
			sessions = append(sessions, *sess)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (r pomodoroRepo) Complete(ctx context.Context, userID, sessionID uuid.UUID, now time.Time, award int) error {
	session, ok := r.s.sessions[sessionID]
	if !ok || session.UserID != userID {
		return domain.ErrNotFound
	}
	if session.Completed {
		return domain.ErrSessionAlreadyCompleted
	}
	session.Completed = true
	session.EndTime = &now
	return r.s.Credit(ctx, userID, award)
}

type rewardRepo struct{ s *memStore }

func (r rewardRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error) {
	var rewards []domain.Reward
	for _, rw := range r.s.rewards {
		if rw.UserID == nil || *rw.UserID == userID {
			rewards = append(rewards, *rw)
		}
	}
	return rewards, nil
}

func (r rewardRepo) GetVisible(ctx context.Context, userID, rewardID uuid.UUID) (*domain.Reward, error) {
	reward, ok := r.s.rewards[rewardID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if reward.UserID != nil && *reward.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *reward
	return &copied, nil
}

func (r rewardRepo) Create(ctx context.Context, reward *domain.Reward) error {
	r.s.rewards[reward.ID] = reward
	return nil
}

type analyticsRepo struct{ s *memStore }

func (r analyticsRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r analyticsRepo) CompletedTaskCounts(ctx context.Context, since *time.Time) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int)
	for _, t := range r.s.tasks {
		if !t.Completed {
			continue
		}
		if since != nil && t.CreatedAt.Before(*since) {
			continue
		}
		counts[t.UserID]++
	}
	return counts, nil
}

func (r analyticsRepo) StreakTotals(ctx context.Context) (map[uuid.UUID]int, error) {
	totals := make(map[uuid.UUID]int)
	for _, h := range r.s.habits {
		totals[h.UserID] += h.Streak
	}
	return totals, nil
}

func (r analyticsRepo) TaskStats(ctx context.Context, userID uuid.UUID, since *time.Time) (int, int, error) {
	var total, completed int
	for _, t := range r.s.tasks {
		if t.UserID != userID {
			continue
		}
		if since != nil && t.CreatedAt.Before(*since) {
			continue
		}
		total++
		if t.Completed {
			completed++
		}
	}
	return total, completed, nil
}

func (r analyticsRepo) HabitsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	return habitRepo{r.s}.ListByUser(ctx, userID)
}

func (r analyticsRepo) PomodoroTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (int, int, error) {
	var sessions, minutes int
	for _, sess := range r.s.sessions {
		if sess.UserID != userID {
			continue
		}
		if since != nil && sess.StartTime.Before(*since) {
			continue
		}
		sessions++
		minutes += sess.Duration
	}
	return sessions, minutes, nil
}

// fakeTokenCache stores refresh tokens in a map.
type fakeTokenCache struct {
	tokens map[string]string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{tokens: make(map[string]string)}
}

func (c *fakeTokenCache) SaveRefresh(ctx context.Context, userID, refreshToken string) error {
	c.tokens[refreshToken] = userID
	return nil
}

func (c *fakeTokenCache) CheckRefresh(ctx context.Context, refreshToken string) (string, error) {
	userID, ok := c.tokens[refreshToken]
	if !ok {
		return "", domain.ErrNotFound
	}
	return userID, nil
}

func (c *fakeTokenCache) DeleteRefresh(ctx context.Context, refreshToken string) error {
	delete(c.tokens, refreshToken)
	return nil
}

// noopLeaderboardCache always misses.
type noopLeaderboardCache struct{}

func (noopLeaderboardCache) Get(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.LeaderboardEntry, bool) {
	return nil, false
}

func (noopLeaderboardCache) Set(ctx context.Context, timeframe domain.Timeframe, limit int, entries []domain.LeaderboardEntry) {
}
