package domain

import "errors"

var (
	// ErrNotFound covers both a missing entity and one owned by a different
	// user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrTaskAlreadyCompleted       = errors.New("task already completed")
	ErrHabitAlreadyCompletedToday = errors.New("habit already completed today")
	ErrSessionAlreadyCompleted    = errors.New("session already completed")

	ErrInsufficientFunds = errors.New("insufficient coins")
	ErrPremiumRequired   = errors.New("premium subscription required")
	ErrAlreadyPremium    = errors.New("user is already premium")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidAmount     = errors.New("amount must be non-negative")
	ErrInvalidPriority   = errors.New("priority must be low, medium or high")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidTargetDays = errors.New("target days must be at least 1")
	ErrInvalidReminder   = errors.New("reminder time must be in HH:MM format")

	// ErrTransient marks timeouts and serialization failures; the caller
	// should retry with backoff.
	ErrTransient = errors.New("transient storage failure")
)
