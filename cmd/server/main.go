package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-bed-management/internal/config"
	"hospital-bed-management/internal/database"
	"hospital-bed-management/internal/events"
	"hospital-bed-management/internal/handler"
	"hospital-bed-management/internal/logger"
	"hospital-bed-management/internal/middleware"
	"hospital-bed-management/internal/repository"
	"hospital-bed-management/internal/service"
	"hospital-bed-management/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Build logger
	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "hospital-bed-management")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("configuration loaded")

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	bedRepo := repository.NewBedRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Connect to the event channel
	mqttClient, err := events.NewClient(events.ClientOptions{
		BrokerURL: cfg.MQTT.BrokerURL,
		ClientID:  cfg.MQTT.ClientID,
		Username:  cfg.MQTT.Username,
		Password:  cfg.MQTT.Password,
		QoS:       cfg.MQTT.QoS,
	}, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to MQTT broker", zap.Error(err))
	}
	defer mqttClient.Disconnect()

	publisher := events.NewPublisher(mqttClient, zlog)

	// 6. Initialize services
	bedService := service.NewBedService(bedRepo, patientRepo, auditRepo, zlog)
	patientService := service.NewPatientService(patientRepo, auditRepo, zlog)
	assignmentService := service.NewAssignmentService(bedRepo, patientRepo, auditRepo, zlog)
	dischargeService := service.NewDischargeService(patientRepo, bedRepo, publisher, auditRepo, events.TopicBedReleased, zlog)

	// 7. Start the bed release consumer
	consumer := events.NewConsumer(bedRepo, zlog)
	if err := consumer.Start(mqttClient); err != nil {
		zlog.Fatal("failed to start bed release consumer", zap.Error(err))
	}

	// 8. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 9. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 10. Register handlers
	bedHandler := handler.NewBedHandler(bedService, assignmentService)
	patientHandler := handler.NewPatientHandler(patientService, dischargeService)

	// 11. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-bed-management",
		})
	})

	api := r.Group("/api")
	{
		beds := api.Group("/beds")
		{
			beds.POST("", bedHandler.CreateBed)
			beds.GET("", bedHandler.ListBeds)
			beds.GET("/available", bedHandler.ListAvailableBeds)
			beds.GET("/:id", bedHandler.GetBed)
			beds.DELETE("/:id", bedHandler.DeleteBed)
			beds.POST("/:id/assign", bedHandler.AssignPatient)
			beds.POST("/:id/release", bedHandler.ReleaseBed)
		}

		patients := api.Group("/patients")
		{
			patients.POST("", patientHandler.CreatePatient)
			patients.GET("", patientHandler.ListPatients)
			patients.GET("/:id", patientHandler.GetPatient)
			patients.DELETE("/:id", patientHandler.DeletePatient)
			patients.PUT("/:id/discharge", patientHandler.Discharge)
		}
	}

	// 12. Setup graceful shutdown
	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")
}
