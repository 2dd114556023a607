package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/auth"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/config"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/handlers"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/services"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()

	// 2. Initialize Stores
	userStore := store.NewUserStore()
	jobStore := store.NewJobStore()
	applicationStore := store.NewApplicationStore()

	// 3. Initialize Core Services (Dependencies)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userStore)
	jobService := services.NewJobService(jobStore, userStore)
	applicationService := services.NewApplicationService(applicationStore, jobStore)
	dashboardService := services.NewDashboardService(userStore, jobStore, applicationStore)

	// 4. Initialize Handlers & Auth Middleware
	authHandler := handlers.NewAuthHandler(userService, tokens)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	gate := auth.NewMiddleware(tokens, userStore)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	r.GET("/", handlers.HealthCheck)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register/jobseeker", authHandler.RegisterJobSeeker)
		authRoutes.POST("/register/employer", authHandler.RegisterEmployer)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/token", authHandler.Token)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("/", jobHandler.List)
		jobs.GET("/:id", jobHandler.Get)
		jobs.POST("/", gate.Authenticate(), gate.RequireRole(models.RoleEmployer), jobHandler.Create)
		jobs.PUT("/:id", gate.Authenticate(), gate.RequireRole(models.RoleEmployer), jobHandler.Update)
		jobs.DELETE("/:id", gate.Authenticate(), gate.RequireRole(models.RoleEmployer), jobHandler.Delete)
	}

	applications := r.Group("/applications", gate.Authenticate())
	{
		applications.POST("/", gate.RequireRole(models.RoleJobSeeker), applicationHandler.Apply)
		applications.GET("/my", gate.RequireRole(models.RoleJobSeeker), applicationHandler.ListMine)
		applications.GET("/for-job/:job_id", gate.RequireRole(models.RoleEmployer), applicationHandler.ListForJob)
		applications.PUT("/:id/review", gate.RequireRole(models.RoleEmployer), applicationHandler.Review)
	}

	dashboard := r.Group("/dashboard", gate.Authenticate())
	{
		dashboard.GET("/jobseeker", gate.RequireRole(models.RoleJobSeeker), dashboardHandler.JobSeeker)
		dashboard.GET("/employer", gate.RequireRole(models.RoleEmployer), dashboardHandler.Employer)
	}

	log.Println("🚀 Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
