package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/config"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/handlers"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/middleware"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/otp"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/storage"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/whatsapp"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config, log *zap.Logger, bucket *storage.Bucket) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "fleet-maintenance-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	otpService := otp.NewService(db, time.Duration(cfg.OtpMinutes)*time.Minute)
	waClient := whatsapp.NewClient(cfg.WhatsAppToken, cfg.WhatsAppPhoneID)

	authHandler := handlers.NewAuthHandler(db, cfg, otpService, waClient, log)
	vehicleHandler := handlers.NewVehicleHandler(db)
	driverHandler := handlers.NewDriverHandler(db)
	ticketHandler := handlers.NewTicketHandler(db)
	maintenanceHandler := handlers.NewMaintenanceHandler(db)
	operationHandler := handlers.NewOperationHandler(db, log)
	scheduleHandler := handlers.NewScheduleHandler(db)
	verificationHandler := handlers.NewVerificationHandler(db)
	uploadHandler := handlers.NewUploadHandler(bucket, log)
	dashboardHandler := handlers.NewDashboardHandler(db)

	api := router.Group("/api")
	{
		api.POST("/auth/send-otp", authHandler.SendOTP)
		api.POST("/auth/send-otp-whatsapp", authHandler.SendOTPWhatsApp)
		api.POST("/auth/verify-otp", authHandler.VerifyOTP)
		api.GET("/auth/check", authHandler.Check)
		api.GET("/auth/role", authHandler.Role)
		api.POST("/auth/logout", authHandler.Logout)
	}

	protected := api.Group("/")
	protected.Use(middleware.SessionRequired(cfg.AuthSecret))
	{
		protected.GET("/dashboard", dashboardHandler.Get)

		protected.GET("/vehicles", vehicleHandler.List)
		protected.POST("/vehicles", vehicleHandler.Create)
		protected.GET("/vehicles/:id", vehicleHandler.Get)
		protected.PUT("/vehicles/:id", vehicleHandler.Update)
		protected.DELETE("/vehicles/:id", vehicleHandler.Delete)
		protected.PUT("/vehicles/:id/documents", vehicleHandler.UpdateDocuments)

		protected.GET("/drivers", driverHandler.List)
		protected.POST("/drivers", driverHandler.Create)
		protected.PUT("/drivers/:id", driverHandler.Update)
		protected.DELETE("/drivers/:id", driverHandler.Delete)

		protected.GET("/tickets", ticketHandler.List)
		protected.POST("/tickets", ticketHandler.Create)
		protected.PUT("/tickets/:id", ticketHandler.Update)
		protected.DELETE("/tickets/:id", ticketHandler.Delete)

		protected.GET("/maintenances", maintenanceHandler.List)
		protected.POST("/maintenances", maintenanceHandler.Create)
		protected.GET("/maintenance-types", maintenanceHandler.ListTypes)
		protected.POST("/maintenance-types", maintenanceHandler.CreateType)

		protected.GET("/operations", operationHandler.List)
		protected.POST("/operations", operationHandler.Create)
		protected.PUT("/operations/:id", operationHandler.UpdateStatus)

		protected.GET("/vehicle-services", scheduleHandler.ListVehicleSchedules)
		protected.POST("/vehicle-services", scheduleHandler.CreateVehicleSchedule)
		protected.POST("/vehicle-services/:id/services", scheduleHandler.AddVehicleServiceItem)
		protected.GET("/ac-services", scheduleHandler.ListACSchedules)
		protected.POST("/ac-services", scheduleHandler.CreateACSchedule)
		protected.POST("/ac-services/:id/services", scheduleHandler.AddACServiceItem)

		protected.GET("/verification", verificationHandler.List)
		protected.POST("/verification", verificationHandler.Create)

		protected.POST("/upload", uploadHandler.Upload)
		protected.GET("/download", uploadHandler.Download)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
