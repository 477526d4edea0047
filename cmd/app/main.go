package main

import (
	"context"
	"os"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbadapter "chirp/internal/adapters/database"
	"chirp/internal/adapters/httpapi"
	redisadapter "chirp/internal/adapters/redis"
	"chirp/internal/config"
	"chirp/internal/core/account"
	accountapp "chirp/internal/core/account/service"
	"chirp/internal/core/friendship"
	friendshipapp "chirp/internal/core/friendship/service"
	"chirp/internal/core/like"
	likeapp "chirp/internal/core/like/service"
	"chirp/internal/core/post"
	postapp "chirp/internal/core/post/service"
	timelineapp "chirp/internal/core/timeline/service"
)

func main() {
	logger, err := config.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.Init(logger); err != nil {
		logger.Fatal("Invalid configuration:", zap.Error(err))
	}

	db, err := config.InitDB()
	if err != nil {
		logger.Fatal("Error connecting to the database:", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&account.Account{},
		&post.Post{},
		&friendship.Friendship{},
		&like.Like{},
	); err != nil {
		logger.Fatal("Error during migrations:", zap.Error(err))
	}
	logger.Info("✅ Database migrations completed")

	ctx := context.Background()
	redisClient, err := config.InitRedis(ctx)
	if err != nil {
		logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}

	defer closeResources(logger, db, redisClient)

	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	accountRepo := dbadapter.NewAccountRepositoryDatabase(db)
	friendshipRepo := dbadapter.NewFriendshipRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	likeRepo := dbadapter.NewLikeRepositoryDatabase(db)
	sessionStore := redisadapter.NewSessionRepositoryRedis(redisClient)

	accountSvc := accountapp.NewAccountService(accountRepo, sessionStore, jwtKey, logger)
	friendshipSvc := friendshipapp.NewFriendshipService(friendshipRepo, accountRepo, logger)
	postSvc := postapp.NewPostService(postRepo, logger)
	likeSvc := likeapp.NewLikeService(likeRepo, postRepo, logger)
	timelineSvc := timelineapp.NewTimelineService(accountRepo, postRepo, friendshipRepo, likeRepo)

	r := httpapi.SetupRoutes(accountSvc, friendshipSvc, postSvc, likeSvc, timelineSvc, sessionStore, jwtKey)

	logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger, db *gorm.DB, redisClient *redis.Client) {
	if err := redisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
