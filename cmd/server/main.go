package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/database"
	"github.com/taskboard/taskboard-api/internal/handlers"
	"github.com/taskboard/taskboard-api/internal/middleware"
	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/notify"
	"github.com/taskboard/taskboard-api/internal/repository"
	"github.com/taskboard/taskboard-api/internal/services"
	"github.com/taskboard/taskboard-api/internal/token"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	if err := database.Connect(cfg); err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	if err := database.Migrate(); err != nil {
		logger.Fatalw("failed to migrate database", "error", err)
	}

	gin.SetMode(cfg.GinMode)

	router := setupRouter(cfg, logger)

	logger.Infow("starting server", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func newLogger(cfg *config.Config) *zap.SugaredLogger {
	var base *zap.Logger
	var err error
	if cfg.GinMode == gin.ReleaseMode {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return base.Sugar()
}

func setupRouter(cfg *config.Config, logger *zap.SugaredLogger) *gin.Engine {
	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	var notifier notify.Notifier
	if cfg.SMTPHost != "" {
		notifier = notify.NewEmailNotifier(cfg, logger)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	access := services.NewAccessResolver(taskRepo, teamRepo)
	authService := services.NewAuthService(userRepo, issuer)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, teamRepo, userRepo, access, notifier, logger)
	teamService := services.NewTeamService(teamRepo, userRepo, access)
	commentService := services.NewCommentService(commentRepo, taskRepo, userRepo)
	dashboardService := services.NewDashboardService(access)

	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService, aiService)
	teamHandler := handlers.NewTeamHandler(teamService)
	commentHandler := handlers.NewCommentHandler(commentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.RequireAuth(issuer), authHandler.GetCurrentUser)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(issuer))

	managerial := middleware.RequireRoles(models.RoleAdmin, models.RoleManager)

	tasks := authed.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/my-tasks", taskHandler.ListMyTasks)
		tasks.GET("/filter", taskHandler.FilterTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.POST("", managerial, taskHandler.CreateTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", managerial, taskHandler.DeleteTask)
		tasks.POST("/generate", managerial, taskHandler.GenerateTasks)
	}

	teams := authed.Group("/teams")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.POST("", managerial, teamHandler.CreateTeam)
		teams.POST("/:id/members/:userId", managerial, teamHandler.AddMember)
		teams.DELETE("/:id/members/:userId", managerial, teamHandler.RemoveMember)
	}

	comments := authed.Group("/comments")
	{
		comments.GET("/task/:taskId", commentHandler.ListForTask)
		comments.POST("", commentHandler.CreateComment)
		comments.DELETE("/:id", commentHandler.DeleteComment)
	}

	users := authed.Group("/users")
	users.Use(managerial)
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/managers", userHandler.ListManagers)
	}

	authed.GET("/dashboard/stats", dashboardHandler.GetStats)

	return router
}
