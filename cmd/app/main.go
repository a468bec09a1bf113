package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskrewards/config"
	"taskrewards/internal/application"
	"taskrewards/internal/domain"
	"taskrewards/internal/infrastructure/cache"
	"taskrewards/internal/infrastructure/repository"
	"taskrewards/internal/infrastructure/security"
	"taskrewards/internal/middleware"
	handlers "taskrewards/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Task{},
		&domain.Habit{},
		&domain.Reward{},
		&domain.PomodoroSession{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	pomodoroRepo := repository.NewPomodoroRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	if err := rewardRepo.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed reward catalog: %v", err)
	}

	tokenCache := cache.NewTokenCache(rdb, cfg.RefreshTokenTTL)
	leaderboardCache := cache.NewLeaderboardCache(rdb)
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authUseCase := application.NewAuthUseCase(userRepo, tokenCache, hasher, tokenManager)
	ledgerUseCase := application.NewLedgerUseCase(ledgerRepo)
	userUseCase := application.NewUserUseCase(userRepo, ledgerUseCase, hasher)
	taskUseCase := application.NewTaskUseCase(taskRepo)
	habitUseCase := application.NewHabitUseCase(habitRepo)
	pomodoroUseCase := application.NewPomodoroUseCase(pomodoroRepo)
	rewardUseCase := application.NewRewardUseCase(rewardRepo, userRepo, ledgerUseCase)
	analyticsUseCase := application.NewAnalyticsUseCase(analyticsRepo, leaderboardCache)

	limiter := middleware.NewRateLimiter(rdb)

	router := handlers.NewRouter(
		handlers.NewAuthHandler(authUseCase),
		handlers.NewUserHandler(userUseCase),
		handlers.NewTaskHandler(taskUseCase),
		handlers.NewHabitHandler(habitUseCase),
		handlers.NewPomodoroHandler(pomodoroUseCase),
		handlers.NewRewardHandler(rewardUseCase),
		handlers.NewAnalyticsHandler(analyticsUseCase),
		authUseCase,
		limiter,
	)

	server := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("TaskRewards API is running on %s...", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
