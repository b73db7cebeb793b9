package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/yigit/alumnibridge/internal/app/controllers"
	appMigrations "github.com/yigit/alumnibridge/internal/app/migrations"
	appRepos "github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/app/routes"
	"github.com/yigit/alumnibridge/internal/app/services"
	"github.com/yigit/alumnibridge/internal/config"
	"github.com/yigit/alumnibridge/internal/db"
	"github.com/yigit/alumnibridge/internal/middleware"
	"github.com/yigit/alumnibridge/internal/pkg/auth"
	"github.com/yigit/alumnibridge/internal/pkg/email"
	"github.com/yigit/alumnibridge/internal/pkg/helpers"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
	"github.com/yigit/alumnibridge/internal/pkg/sse"
	"github.com/yigit/alumnibridge/internal/seed"
)

// Dependencies holds everything the HTTP server needs
type Dependencies struct {
	Config                 *config.Config
	DB                     *db.PostgresDB
	Redis                  *db.Redis
	Repositories           *appRepos.Repositories
	Services               *services.Services
	JWTService             *auth.JWTService
	EmailService           email.EmailService
	Broker                 *sse.Broker
	AuthMiddleware         *middleware.AuthMiddleware
	AuthController         *controllers.AuthController
	UserController         *controllers.UserController
	OpportunityController  *controllers.OpportunityController
	EventController        *controllers.EventController
	ApplicationController  *controllers.ApplicationController
	NotificationController *controllers.NotificationController
	AnalyticsController    *controllers.AnalyticsController
}

// LoadConfigAndSetupLogger loads the configuration and configures logging
func LoadConfigAndSetupLogger() (*config.Config, error) {
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Msg("Configuration loaded")

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, runs migrations and seeds demo data
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Seeding failures are not fatal, the API works without demo data
	seedLogger := logger.WithFields(map[string]interface{}{"component": "seed"})
	if err := seed.CreateDefaultData(ctx, database.Pool, seedLogger); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	repos := appRepos.NewRepositories(database.Pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromEmail: cfg.SMTP.From,
	}, logger.WithFields(map[string]interface{}{"component": "email"}))

	broker := sse.NewBroker()
	cache := db.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if cache == nil {
		logger.Info().Msg("Redis not configured, analytics caching disabled")
	}

	svcs := services.NewServices(repos, jwtService, emailService, broker, cache)

	return &Dependencies{
		Config:                 cfg,
		DB:                     database,
		Redis:                  cache,
		Repositories:           repos,
		Services:               svcs,
		JWTService:             jwtService,
		EmailService:           emailService,
		Broker:                 broker,
		AuthMiddleware:         middleware.NewAuthMiddleware(jwtService),
		AuthController:         controllers.NewAuthController(svcs.AuthService),
		UserController:         controllers.NewUserController(svcs.UserService),
		OpportunityController:  controllers.NewOpportunityController(svcs.OpportunityService),
		EventController:        controllers.NewEventController(svcs.EventService),
		ApplicationController:  controllers.NewApplicationController(svcs.ApplicationService),
		NotificationController: controllers.NewNotificationController(svcs.NotificationService),
		AnalyticsController:    controllers.NewAnalyticsController(svcs.AnalyticsService),
	}
}

// SetupRouter builds the gin engine with all routes and middleware attached
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.Metrics())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.OpportunityController,
		deps.EventController,
		deps.ApplicationController,
		deps.NotificationController,
		deps.AnalyticsController,
		deps.AuthMiddleware,
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(1),
	))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
