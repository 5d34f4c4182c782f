package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/attendance"
	googleauth "campus-backend/internal/auth"
	"campus-backend/internal/interventions"
	"campus-backend/internal/llm/groq"
	"campus-backend/internal/profiles"
	"campus-backend/internal/recommendations"
	"campus-backend/internal/schedule"
	"campus-backend/internal/shared/config"
	"campus-backend/internal/shared/server"
	"campus-backend/internal/shared/storage/db"
	"campus-backend/internal/tasks"
)

// App holds the composed application: configuration, storage handle, and the
// ready-to-serve router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
}

// Build wires repositories, services, and handlers. With no reachable
// database it falls back to in-memory stores outside production so the API
// stays usable for local development.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := connectDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var (
		profilesRepo     profiles.Repo
		attendanceRepo   attendance.Repo
		tasksRepo        tasks.Repo
		scheduleRepo     schedule.Repo
		interactionsRepo recommendations.InteractionsRepo
	)
	if sqlDB != nil {
		profilesRepo = &profiles.PGRepo{DB: sqlDB}
		attendanceRepo = &attendance.PGRepo{DB: sqlDB}
		tasksRepo = &tasks.PGRepo{DB: sqlDB}
		scheduleRepo = &schedule.PGRepo{DB: sqlDB}
		interactionsRepo = &recommendations.PGInteractionsRepo{DB: sqlDB}
	} else {
		profilesRepo = profiles.NewMemoryRepo()
		attendanceRepo = attendance.NewMemoryRepo()
		tasksRepo = tasks.NewMemoryRepo()
		scheduleRepo = schedule.NewMemoryRepo()
		interactionsRepo = recommendations.NewMemoryInteractionsRepo()
	}

	profilesSvc := profiles.NewService(profilesRepo)
	attendanceSvc := &attendance.Service{Repo: attendanceRepo}
	tasksSvc := &tasks.Service{Repo: tasksRepo}

	generator := buildGenerator(cfg)
	aggregator := recommendations.NewAggregator(profilesRepo, attendanceRepo, tasksRepo, scheduleRepo)

	var recGenerator recommendations.Generator
	var intGenerator interventions.Generator
	if generator != nil {
		recGenerator = generator
		intGenerator = generator
	}

	orchestrator := recommendations.NewOrchestrator(aggregator, recGenerator)
	tracker := recommendations.NewTracker(interactionsRepo)
	interventionsSvc := interventions.NewService(profilesRepo, attendanceRepo, tasksRepo, intGenerator)

	router := server.NewRouter(server.Deps{
		Config: cfg,
		GoogleAuth: googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
			profilesSvc,
		),
		Profiles:        profiles.NewHandler(profilesSvc),
		Attendance:      attendance.NewHandler(attendanceSvc),
		Tasks:           tasks.NewHandler(tasksSvc),
		Schedule:        schedule.NewHandler(scheduleRepo),
		Recommendations: recommendations.NewHandler(orchestrator, tracker),
		Interventions:   interventions.NewHandler(interventionsSvc),
	})

	return &App{Config: cfg, Router: router, DB: sqlDB}, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func connectDatabase(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		log.Printf("no DATABASE_URL set, using in-memory stores")
		return nil, nil
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil, nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		if cfg.Env == "production" {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil, nil
	}
	return sqlDB, nil
}

// buildGenerator constructs the model-backed generator, or nil when the
// provider is disabled or unconfigured. A nil generator simply skips the
// model tier of every fallback chain.
func buildGenerator(cfg config.Config) *groq.Client {
	if cfg.LLMProvider != "groq" {
		return nil
	}
	apiKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	if apiKey == "" {
		log.Printf("GROQ_API_KEY not set, model tier disabled")
		return nil
	}
	client, err := groq.NewClient(apiKey, cfg.LLMModel)
	if err != nil {
		log.Printf("groq client unavailable, model tier disabled: %v", err)
		return nil
	}
	return client
}
