package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskrewards/internal/application"
)

type TaskHandler struct {
	tasks *application.TaskUseCase
}

func NewTaskHandler(tasks *application.TaskUseCase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// GET /api/v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		CoinsReward *int       `json:"coins_reward"`
		DueDate     *time.Time `json:"due_date"`
		Priority    string     `json:"priority"`
		Category    string     `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		CoinsReward: req.CoinsReward,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// PUT /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		CoinsReward *int       `json:"coins_reward"`
		DueDate     *time.Time `json:"due_date"`
		Priority    *string    `json:"priority"`
		Category    *string    `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), userID, taskID, application.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		CoinsReward: req.CoinsReward,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, taskID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// POST /api/v1/tasks/:id/complete
func (h *TaskHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	earned, err := h.tasks.Complete(c.Request.Context(), userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Task completed successfully",
		"coins_earned": earned,
	})
}
