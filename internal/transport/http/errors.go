package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskrewards/internal/domain"
)

// respondError maps domain errors onto HTTP status codes. Guard failures and
// duplicates are client errors; transient storage failures ask for a retry.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrPremiumRequired):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrTransient):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrTaskAlreadyCompleted),
		errors.Is(err, domain.ErrHabitAlreadyCompletedToday),
		errors.Is(err, domain.ErrSessionAlreadyCompleted),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrAlreadyPremium),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidTargetDays),
		errors.Is(err, domain.ErrInvalidReminder):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUserID reads the id placed in the context by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
		return uuid.Nil, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
		return uuid.Nil, false
	}
	return id, true
}
