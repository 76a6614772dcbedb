package routes

import (
	"github.com/RS-Priyanshu/RSIH/internal/api/handlers"
	"github.com/RS-Priyanshu/RSIH/internal/api/middleware"
	"github.com/RS-Priyanshu/RSIH/internal/auth"
	"github.com/RS-Priyanshu/RSIH/internal/cache"
	"github.com/RS-Priyanshu/RSIH/internal/config"
	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	"github.com/RS-Priyanshu/RSIH/internal/repository"
	"github.com/RS-Priyanshu/RSIH/internal/service"
	"github.com/RS-Priyanshu/RSIH/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The redis client
// may be nil, in which case listings are served straight from the database.
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, documents *storage.DocumentStore, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize token service and auth middleware
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authMiddleware := auth.NewMiddleware(tokens)

	// Initialize cache
	listingCache := cache.New(redisClient, "rsih")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	collegeRepo := repository.NewCollegeRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	psRepo := repository.NewProblemStatementRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, collegeRepo, tokens, documents, validate)
	adminService := service.NewAdminService(userRepo, psRepo, submissionRepo, listingCache, validate)
	spocService := service.NewSpocService(userRepo, collegeRepo, teamRepo, submissionRepo, validate)
	teamLeaderService := service.NewTeamLeaderService(teamRepo, psRepo, submissionRepo, validate)
	publicService := service.NewPublicService(psRepo, listingCache)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	spocHandler := handlers.NewSpocHandler(spocService)
	teamHandler := handlers.NewTeamHandler(teamLeaderService)
	publicHandler := handlers.NewPublicHandler(publicService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded SPOC nomination PDFs
	router.Static("/uploads", documents.BaseDir())

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/register-spoc", authHandler.RegisterSpoc)
		authGroup.POST("/login", authHandler.Login)
	}

	// Public routes
	public := router.Group("/public")
	{
		public.GET("/ps", publicHandler.ListProblemStatements)
		public.GET("/ps/:slug", publicHandler.GetProblemStatement)
	}

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/spocs", adminHandler.ListSpocs)
		admin.PUT("/spoc/:id/verify", adminHandler.VerifySpoc)
		admin.POST("/ps", adminHandler.CreateProblemStatement)
		admin.GET("/ps", adminHandler.ListProblemStatements)
		admin.PUT("/ps/:id", adminHandler.UpdateProblemStatement)
		admin.DELETE("/ps/:id", adminHandler.DeleteProblemStatement)
		admin.GET("/submissions", adminHandler.ListSubmissions)
	}

	// SPOC routes
	spoc := router.Group("/spoc")
	spoc.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleSpoc))
	{
		spoc.POST("/team", spocHandler.RegisterTeam)
		spoc.GET("/teams", spocHandler.GetMyTeams)
		spoc.GET("/college", spocHandler.GetMyCollege)
		spoc.GET("/college/:id/teams", spocHandler.GetTeamsByCollege)
		spoc.GET("/team/:id/submission", spocHandler.CheckTeamSubmission)
	}

	// Team leader routes
	team := router.Group("/team")
	team.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleTeamLeader))
	{
		team.GET("/ps", publicHandler.ListProblemStatements)
		team.POST("/submit", teamHandler.SubmitIdea)
		team.GET("/submissions", teamHandler.GetMySubmissions)
		team.GET("/team", teamHandler.GetMyTeam)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
