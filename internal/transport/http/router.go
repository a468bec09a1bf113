package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taskrewards/internal/middleware"
)

func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	taskHandler *TaskHandler,
	habitHandler *HabitHandler,
	pomodoroHandler *PomodoroHandler,
	rewardHandler *RewardHandler,
	analyticsHandler *AnalyticsHandler,
	validator middleware.AccessValidator,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", limiter.Limit("register", 5, 1*time.Minute), authHandler.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(validator))
		{
			authed.GET("/user/profile", userHandler.GetProfile)
			authed.PUT("/user/profile", userHandler.UpdateProfile)
			authed.POST("/premium/upgrade", userHandler.UpgradePremium)

			authed.GET("/tasks", taskHandler.List)
			authed.POST("/tasks", taskHandler.Create)
			authed.PUT("/tasks/:id", taskHandler.Update)
			authed.DELETE("/tasks/:id", taskHandler.Delete)
			authed.POST("/tasks/:id/complete", taskHandler.Complete)

			authed.GET("/habits", habitHandler.List)
			authed.POST("/habits", habitHandler.Create)
			authed.POST("/habits/:id/complete", habitHandler.Complete)

			authed.GET("/pomodoro", pomodoroHandler.History)
			authed.POST("/pomodoro", pomodoroHandler.Start)
			authed.POST("/pomodoro/:id/complete", pomodoroHandler.Complete)

			authed.GET("/rewards", rewardHandler.List)
			authed.POST("/rewards", rewardHandler.Create)
			authed.POST("/rewards/:id/redeem", rewardHandler.Redeem)

			authed.GET("/progress", analyticsHandler.Progress)
			authed.GET("/leaderboard", analyticsHandler.Leaderboard)
		}
	}

	return r
}
