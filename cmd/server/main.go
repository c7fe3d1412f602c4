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

	"coachdesk/coaching-app/internal/api"
	"coachdesk/coaching-app/internal/config"
	"coachdesk/coaching-app/internal/repository/mongo"
	"coachdesk/coaching-app/internal/service"
	"coachdesk/coaching-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title CoachDesk API
// @version 1.0
// @description API for coaches managing clients, training and nutrition content, pricing, intake forms and public pages.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting CoachDesk server...")

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
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureClientIndexes(ctx, appDB.Collection("clients"))
		mongo.EnsureProgressIndexes(ctx, appDB.Collection("client_progress"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureWorkoutSplitIndexes(ctx, appDB.Collection("workout_splits"))
		mongo.EnsureMealIndexes(ctx, appDB.Collection("meals"))
		mongo.EnsureMealPlanIndexes(ctx, appDB.Collection("meal_plans"))
		mongo.EnsurePricingPlanIndexes(ctx, appDB.Collection("pricing_plans"))
		mongo.EnsureFormIndexes(ctx, appDB.Collection("forms"))
		mongo.EnsureSubmissionIndexes(ctx, appDB.Collection("form_submissions"))
		mongo.EnsurePublicPageIndexes(ctx, appDB.Collection("public_pages"))
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
	clientRepo := mongo.NewMongoClientRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	splitRepo := mongo.NewMongoWorkoutSplitRepository(appDB)
	mealRepo := mongo.NewMongoMealRepository(appDB)
	mealPlanRepo := mongo.NewMongoMealPlanRepository(appDB)
	pricingRepo := mongo.NewMongoPricingPlanRepository(appDB)
	formRepo := mongo.NewMongoFormRepository(appDB)
	submissionRepo := mongo.NewMongoSubmissionRepository(appDB)
	pageRepo := mongo.NewMongoPublicPageRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	clientService := service.NewClientService(clientRepo, progressRepo, splitRepo, mealPlanRepo, pricingRepo)
	exerciseService := service.NewExerciseService(exerciseRepo)
	workoutService := service.NewWorkoutService(workoutRepo, splitRepo, exerciseRepo)
	mealService := service.NewMealService(mealRepo, mealPlanRepo)
	pricingService := service.NewPricingService(pricingRepo)
	formService := service.NewFormService(formRepo, submissionRepo)
	pageService := service.NewPageService(pageRepo)
	dashboardService := service.NewDashboardService(clientRepo)
	mediaService := service.NewMediaService(fileStorage)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		clientService,
		exerciseService,
		workoutService,
		mealService,
		pricingService,
		formService,
		pageService,
		dashboardService,
		mediaService,
	)

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
