package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	dashboardHTTP "coursedeck/internal/controller/http"
	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/internal/usecase"
	"coursedeck/pkg/cache"
	"coursedeck/pkg/config"
	"coursedeck/pkg/jwt"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
	"coursedeck/pkg/session"

	_ "coursedeck/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	redisClient *redis.Client
	jwtService  *jwt.Service
	sessions    session.Store
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.SessionTTL)
	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	return &App{
		cfg:         cfg,
		log:         log,
		redisClient: redisClient,
		jwtService:  jwtService,
		sessions:    sessions,
	}, nil
}

func (a *App) Run() error {
	// Initialize backend API repositories
	client := backend.NewClient(a.cfg.BackendAPIURL, a.log)
	authRepo := backend.NewAuthRepository(client)
	userRepo := backend.NewUserRepository(client)
	courseRepo := backend.NewCourseRepository(client)
	enrollmentRepo := backend.NewEnrollmentRepository(client)
	assignmentRepo := backend.NewAssignmentRepository(client)
	paymentRepo := backend.NewPaymentRepository(client)
	notificationRepo := backend.NewNotificationRepository(client)
	analyticsRepo := backend.NewAnalyticsRepository(client)

	// Initialize use cases
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, a.redisClient, a.sessions, a.log)
	userUseCase := usecase.NewUserAdminUseCase(userRepo, a.sessions, a.log)
	courseUseCase := usecase.NewCourseUseCase(courseRepo, a.sessions, a.log)
	assignmentUseCase := usecase.NewAssignmentUseCase(assignmentRepo, notificationUseCase, a.sessions, a.log)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, a.sessions, a.log)
	dashboardUseCase := usecase.NewDashboardUseCase(
		courseRepo, enrollmentRepo, assignmentRepo, userRepo, paymentRepo,
		analyticsRepo, notificationUseCase, a.cfg.DefaultCurrency, a.sessions, a.log,
	)
	authUseCase := usecase.NewAuthUseCase(
		authRepo, a.jwtService, a.sessions, a.log,
		userUseCase.DropSession, paymentUseCase.DropSession,
	)

	// Initialize HTTP handlers
	authHandler := dashboardHTTP.NewAuthHandler(authUseCase, a.log)
	dashboardHandler := dashboardHTTP.NewDashboardHandler(dashboardUseCase, a.log)
	userHandler := dashboardHTTP.NewUserHandler(userUseCase, a.log)
	courseHandler := dashboardHTTP.NewCourseHandler(courseUseCase, a.log)
	assignmentHandler := dashboardHTTP.NewAssignmentHandler(assignmentUseCase, a.log)
	paymentHandler := dashboardHTTP.NewPaymentHandler(paymentUseCase, a.log)
	notificationHandler := dashboardHTTP.NewNotificationHandler(notificationUseCase, a.redisClient, a.jwtService, a.sessions, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	student := string(entity.RoleStudent)
	instructor := string(entity.RoleInstructor)
	admin := string(entity.RoleAdmin)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login",
			middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute),
			authHandler.Login)

		// WebSocket authenticates via query token, not the middleware
		api.GET("/ws/notifications", notificationHandler.HandleWebSocket)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService, a.sessions))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/me", authHandler.Me)
			protected.GET("/navigation", dashboardHandler.Navigation)

			protected.GET("/dashboard/student", middleware.RequireRole(student), dashboardHandler.StudentOverview)
			protected.GET("/dashboard/instructor", middleware.RequireRole(instructor), dashboardHandler.InstructorOverview)
			protected.GET("/dashboard/admin", middleware.RequireRole(admin), dashboardHandler.AdminOverview)

			protected.GET("/courses", courseHandler.Browse)
			protected.GET("/courses/mine", middleware.RequireRole(instructor), courseHandler.Mine)
			protected.POST("/courses", middleware.RequireRole(instructor, admin), courseHandler.Create)

			protected.GET("/assignments", middleware.RequireRole(student), assignmentHandler.ListMine)
			protected.GET("/assignments/grading", middleware.RequireRole(instructor), assignmentHandler.PendingSubmissions)
			protected.PUT("/assignments/:id/submissions/:submission_id/grade",
				middleware.RequireRole(instructor), assignmentHandler.Grade)

			protected.GET("/payments", paymentHandler.List)
			protected.GET("/payments/totals", paymentHandler.Totals)

			protected.GET("/notifications", notificationHandler.List)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)

			protected.GET("/users", middleware.RequireRole(admin), userHandler.List)
			protected.PUT("/users/:id/active", middleware.RequireRole(admin), userHandler.SetActive)
			protected.DELETE("/users/:id", middleware.RequireRole(admin), userHandler.Delete)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Dashboard service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down dashboard service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.httpServer != nil {
		return a.httpServer.Shutdown(ctx)
	}
	return nil
}
