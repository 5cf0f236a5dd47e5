package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"clinic-appointments-api/internal/config"
	"clinic-appointments-api/internal/database"
	"clinic-appointments-api/internal/handler"
	"clinic-appointments-api/internal/middleware"
	"clinic-appointments-api/internal/repository"
	"clinic-appointments-api/internal/service"
	"clinic-appointments-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection
	db := database.Connect(cfg)

	// 3. Initialize repositories
	appointmentRepo := repository.NewAppointmentRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	roomRepo := repository.NewRoomRepo(db)

	// 4. Initialize services
	appointmentService := service.NewAppointmentService(appointmentRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	roomService := service.NewRoomService(roomRepo)

	// 5. Setup Gin mode and router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 6. Register handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	roomHandler := handler.NewRoomHandler(roomService)

	// 7. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "clinic-appointments-api",
		})
	})

	api := r.Group("/api/v1")

	appointments := api.Group("/appointments")
	{
		appointments.GET("", appointmentHandler.GetAllAppointments)
		appointments.GET("/search", appointmentHandler.SearchAppointments)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
		appointments.POST("/:id/cancel", appointmentHandler.CancelAppointment)
	}

	doctors := api.Group("/doctors")
	{
		doctors.GET("", doctorHandler.GetAllDoctors)
		doctors.GET("/:id", doctorHandler.GetDoctor)
		doctors.POST("", doctorHandler.CreateDoctor)
		doctors.PUT("/:id", doctorHandler.UpdateDoctor)
		doctors.DELETE("/:id", doctorHandler.DeleteDoctor)
	}

	rooms := api.Group("/rooms")
	{
		rooms.GET("", roomHandler.GetAllRooms)
		rooms.GET("/:id", roomHandler.GetRoom)
		rooms.POST("", roomHandler.CreateRoom)
		rooms.PUT("/:id", roomHandler.UpdateRoom)
		rooms.DELETE("/:id", roomHandler.DeleteRoom)
	}

	// 8. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
