package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskrewards/internal/application"
)

type PomodoroHandler struct {
	pomodoro *application.PomodoroUseCase
}

func NewPomodoroHandler(pomodoro *application.PomodoroUseCase) *PomodoroHandler {
	return &PomodoroHandler{pomodoro: pomodoro}
}

// POST /api/v1/pomodoro
func (h *PomodoroHandler) Start(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// The body is optional; an empty one starts a default-length session.
	var req struct {
		Duration *int `json:"duration"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	session, err := h.pomodoro.Start(c.Request.Context(), userID, req.Duration)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GET /api/v1/pomodoro
func (h *PomodoroHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sessions, err := h.pomodoro.History(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// POST /api/v1/pomodoro/:id/complete
func (h *PomodoroHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	earned, err := h.pomodoro.Complete(c.Request.Context(), userID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Session completed",
		"coins_earned": earned,
	})
}
