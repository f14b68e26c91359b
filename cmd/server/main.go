package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aman-1313/fitealthy/internal/ai"
	"github.com/Aman-1313/fitealthy/internal/api"
	"github.com/Aman-1313/fitealthy/internal/config"
	"github.com/Aman-1313/fitealthy/internal/repository/mongo"
	"github.com/Aman-1313/fitealthy/internal/service"
	"github.com/Aman-1313/fitealthy/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title Fitealthy API
// @version 1.0
// @description API for diet coaching: trainers, clients, meal plans, community and chat.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Fitealthy server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureTrainerIndexes(ctx, appDB.Collection("trainers"))
		mongo.EnsureMealIndexes(ctx, appDB.Collection("meals"))
		mongo.EnsureDietPlanIndexes(ctx, appDB.Collection("diet_plans"))
		mongo.EnsurePostIndexes(ctx, appDB.Collection("posts"))
		mongo.EnsureCommentIndexes(ctx, appDB.Collection("comments"))
		mongo.EnsureFollowIndexes(ctx, appDB.Collection("follows"))
		mongo.EnsureChatIndexes(ctx, appDB.Collection("messages"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	mealRepo := mongo.NewMongoMealRepository(appDB)
	dietPlanRepo := mongo.NewMongoDietPlanRepository(appDB)
	postRepo := mongo.NewMongoPostRepository(appDB)
	commentRepo := mongo.NewMongoCommentRepository(appDB)
	followRepo := mongo.NewMongoFollowRepository(appDB)
	chatRepo := mongo.NewMongoChatRepository(appDB)
	paidPlanRepo := mongo.NewMongoPaidPlanRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, trainerRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	trainerService := service.NewTrainerService(trainerRepo, userRepo, paidPlanRepo)
	dietService := service.NewDietService(mealRepo, dietPlanRepo)
	communityService := service.NewCommunityService(postRepo, commentRepo, followRepo, userRepo, fileStorage)
	chatService := service.NewChatService(chatRepo)

	aiClient := ai.NewClient(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.MaxTokens, cfg.AI.Temperature, cfg.AI.Timeout)
	generationService := service.NewGenerationService(aiClient)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret,
		authService, userService, trainerService, dietService,
		communityService, chatService, generationService, fileStorage)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
