package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadtrack-api/internal/application/service"
	"github.com/sangkips/leadtrack-api/internal/config"
	"github.com/sangkips/leadtrack-api/internal/infrastructure/database"
	"github.com/sangkips/leadtrack-api/internal/infrastructure/repository"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/handler"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/routes"
	"github.com/sangkips/leadtrack-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	followupRepo := repository.NewFollowupRepository(db)
	leadLogRepo := repository.NewLeadLogRepository(db)
	assignRepo := repository.NewAssignToUserRepository(db)
	divisionRepo := repository.NewDivisionRepository(db)
	subDivisionRepo := repository.NewSubDivisionRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	dealerRepo := repository.NewDealerRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	referenceService := service.NewReferenceService(divisionRepo, subDivisionRepo, branchRepo, dealerRepo, userRepo, roleRepo)
	leadService := service.NewLeadService(leadRepo, followupRepo, leadLogRepo, assignRepo, referenceService, txManager)
	assignmentService := service.NewAssignmentService(leadRepo, assignRepo, userRepo, txManager)
	followupService := service.NewFollowupService(followupRepo, leadRepo)
	leadLogService := service.NewLeadLogService(leadLogRepo, leadRepo)
	importService := service.NewImportService(leadRepo, followupRepo, leadLogRepo, assignRepo, referenceService, txManager)
	exportService := service.NewExportService(leadRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Lead:         handler.NewLeadHandler(leadService, assignmentService),
		Followup:     handler.NewFollowupHandler(followupService),
		LeadLog:      handler.NewLeadLogHandler(leadLogService),
		ImportExport: handler.NewImportExportHandler(importService, exportService),
		Reference:    handler.NewReferenceHandler(referenceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
