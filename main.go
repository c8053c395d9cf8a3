package main

import (
	"log"
	"net/http"
	"time"

	"training-service/internal/config"
	"training-service/internal/db"
	"training-service/internal/event"
	"training-service/internal/handlers"
	"training-service/internal/repository"
	"training-service/internal/service"
	"training-service/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New(cfg.Log.File, cfg.Server.Mode)
	defer zlog.Sync()

	if cfg.Mongo.URI == "" {
		zlog.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.Mongo.URI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.Rabbit.URI != "" && cfg.Rabbit.Exchange != "" {
		publisher, err = event.NewEventPublisher(cfg.Rabbit.URI, cfg.Rabbit.Exchange, zlog)
		if err != nil {
			zlog.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
	} else {
		zlog.Info("RabbitMQ not configured, domain events will not be published")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.Mongo.Database)

	// Repositories
	blockRepo := repository.NewBlockRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	quizResultRepo := repository.NewQuizResultRepository(database)
	simResultRepo := repository.NewSimulationResultRepository(database)
	userRepo := repository.NewUserRepository(database)

	// Services
	blockService := service.NewBlockService(blockRepo)
	learningService := service.NewLearningService(blockRepo, progressRepo, quizResultRepo)
	quizService := service.NewQuizService(blockRepo, quizResultRepo, progressRepo, userRepo, zlog)
	simService := service.NewSimulationService(blockRepo, simResultRepo, progressRepo, userRepo, zlog)
	progressService := service.NewProgressService(blockRepo, progressRepo, zlog)
	statsService := service.NewStatsService(progressRepo, quizResultRepo)

	// Handlers
	blockHandler := handlers.NewBlockHandler(blockService)
	learningHandler := handlers.NewLearningHandler(learningService)
	quizHandler := handlers.NewQuizHandler(quizService)
	simHandler := handlers.NewSimulationHandler(simService)
	progressHandler := handlers.NewProgressHandler(progressService, statsService)

	// Public routes
	publicUser := r.Group("/public/training/user")
	{
		publicUser.GET("/:id/results", func(c *gin.Context) {
			quizHandler.GetResultsByUser(c)
			if publisher != nil {
				publisher.Publish("training.user.results", gin.H{"id": c.Param("id")})
			}
		})
		publicUser.GET("/:id/simulations", simHandler.GetAttemptsByUser)
		publicUser.GET("/:id/stats", progressHandler.GetUserStats)
	}

	// Protected routes - learner surface
	protected := r.Group("/protected/training")
	protected.Use(requireUser())
	{
		protected.GET("/blocks", func(c *gin.Context) {
			learningHandler.GetBlocks(c)
			if publisher != nil {
				publisher.Publish("training.blocks.evaluated", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protected.POST("/progress/start", progressHandler.RecordStart)
		protected.POST("/progress/complete", func(c *gin.Context) {
			progressHandler.RecordCompletion(c)
			if publisher != nil {
				publisher.Publish("training.block.completed", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protected.POST("/quiz/:blockId/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			if publisher != nil {
				publisher.Publish("training.quiz.submitted", gin.H{
					"block_id":  c.Param("blockId"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protected.POST("/simulation/:blockId/action", simHandler.ScoreAction)
		protected.POST("/simulation/:blockId/complete", func(c *gin.Context) {
			simHandler.RecordCompletion(c)
			if publisher != nil {
				publisher.Publish("training.simulation.completed", gin.H{
					"block_id":  c.Param("blockId"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// Protected routes - admin content authoring
	adminBlock := r.Group("/protected/training/block")
	adminBlock.Use(requireUser(), requireAdmin())
	{
		adminBlock.GET("/", blockHandler.ListBlocks)
		adminBlock.GET("/:id", blockHandler.GetBlock)
		adminBlock.POST("/", blockHandler.CreateBlock)
		adminBlock.PUT("/:id", blockHandler.UpdateBlock)
		adminBlock.DELETE("/:id", blockHandler.DeleteBlock)
	}

	zlog.Info("training-service listening", zap.String("port", cfg.Server.Port))
	r.Run(":" + cfg.Server.Port)
}

func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-Role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin role required",
				"code":  "FORBIDDEN",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
