package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskrewards/internal/application"
	"taskrewards/internal/domain"
)

type AnalyticsHandler struct {
	analytics *application.AnalyticsUseCase
}

func NewAnalyticsHandler(analytics *application.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GET /api/v1/progress?timeframe=weekly
func (h *AnalyticsHandler) Progress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	timeframe := domain.ParseTimeframe(c.DefaultQuery("timeframe", "weekly"))

	report, err := h.analytics.Progress(c.Request.Context(), userID, timeframe)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/v1/leaderboard?timeframe=weekly&limit=10
func (h *AnalyticsHandler) Leaderboard(c *gin.Context) {
	timeframe := domain.ParseTimeframe(c.DefaultQuery("timeframe", "weekly"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.analytics.Leaderboard(c.Request.Context(), timeframe, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
