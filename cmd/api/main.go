package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mveu/events-api/internal/handler/http"
	redisclient "github.com/mveu/events-api/internal/infrastructure/cache"
	"github.com/mveu/events-api/internal/infrastructure/config"
	database "github.com/mveu/events-api/internal/infrastructure/database"
	"github.com/mveu/events-api/internal/infrastructure/jwt"
	"github.com/mveu/events-api/internal/infrastructure/logger"
	passwordservice "github.com/mveu/events-api/internal/infrastructure/password_service"
	randomgenerator "github.com/mveu/events-api/internal/infrastructure/random_generator"
	"github.com/mveu/events-api/internal/infrastructure/repository/mongodb"
	"github.com/mveu/events-api/internal/infrastructure/storage"
	"github.com/mveu/events-api/internal/infrastructure/store"
	"github.com/mveu/events-api/internal/infrastructure/uuidgen"
	"github.com/mveu/events-api/internal/infrastructure/validator"
	"github.com/mveu/events-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	eventRepo := mongodb.NewEventRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.TokenExpiry)
	tokenService := jwt.NewTokenService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	idGenerator := uuidgen.NewGenerator()
	randomGenerator := randomgenerator.NewRandomGenerator()

	imageStore, err := storage.NewDiskImageStore(appConfig.UploadDir, appConfig.MaxUploadBytes, randomGenerator)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, tokenService, appLogger, appValidator, idGenerator)
	eventUsecase := usecase.NewEventUsecase(eventRepo, imageStore, idGenerator, appLogger, appConfig)
	registrationUsecase := usecase.NewRegistrationUsecase(userRepo, eventRepo, idGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		if rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL); rdb != nil {
			defer redisclient.Close(rdb)
			eventUsecase.SetEventCache(store.NewEventCacheStore(rdb))
		}
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(
		userUsecase, eventUsecase, registrationUsecase,
		tokenService, appConfig.UploadDir, appConfig.RateLimitPerSec,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
