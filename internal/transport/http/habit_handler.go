package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskrewards/internal/application"
)

type HabitHandler struct {
	habits *application.HabitUseCase
}

func NewHabitHandler(habits *application.HabitUseCase) *HabitHandler {
	return &HabitHandler{habits: habits}
}

// GET /api/v1/habits
func (h *HabitHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	habits, err := h.habits.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

// POST /api/v1/habits
func (h *HabitHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		TargetDays   *int   `json:"target_days"`
		ReminderTime string `json:"reminder_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.habits.Create(c.Request.Context(), userID, application.CreateHabitInput{
		Name:         req.Name,
		Description:  req.Description,
		TargetDays:   req.TargetDays,
		ReminderTime: req.ReminderTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// POST /api/v1/habits/:id/complete
func (h *HabitHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	habitID, ok := pathID(c, "id")
	if !ok {
		return
	}

	streak, earned, err := h.habits.Complete(c.Request.Context(), userID, habitID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Habit completed",
		"streak":       streak,
		"coins_earned": earned,
	})
}
