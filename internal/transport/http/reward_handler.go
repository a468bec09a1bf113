package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskrewards/internal/application"
)

type RewardHandler struct {
	rewards *application.RewardUseCase
}

func NewRewardHandler(rewards *application.RewardUseCase) *RewardHandler {
	return &RewardHandler{rewards: rewards}
}

// GET /api/v1/rewards
func (h *RewardHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rewards, err := h.rewards.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// POST /api/v1/rewards
func (h *RewardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		CoinsCost   *int   `json:"coins_cost" binding:"required"`
		IsPremium   bool   `json:"is_premium"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reward, err := h.rewards.CreateCustom(c.Request.Context(), userID, application.CreateRewardInput{
		Name:        req.Name,
		Description: req.Description,
		CoinsCost:   *req.CoinsCost,
		IsPremium:   req.IsPremium,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reward)
}

// POST /api/v1/rewards/:id/redeem
func (h *RewardHandler) Redeem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rewardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	remaining, err := h.rewards.Redeem(c.Request.Context(), userID, rewardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Reward redeemed successfully",
		"remaining_coins": remaining,
	})
}
