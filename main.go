package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-backoffice/config"
	"hotel-backoffice/controllers"
	"hotel-backoffice/routes"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	utils.InitLogger()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	syncCfg := config.LoadCleaningSync()
	if !syncCfg.Configured() {
		log.Println("⚠️  Cleaning sync endpoint not configured; QR completion will fail until CLEANING_SYNC_URL / CLEANING_SYNC_KEY are set")
	}

	// Initialize services
	customerService := services.NewCustomerService(db)
	bookingService := services.NewBookingService(db)
	roomService := services.NewRoomService(db)
	cleaningService := services.NewCleaningService(db)
	cleaningSyncService := services.NewCleaningSyncService(cleaningService, syncCfg)

	// Initialize controllers
	customerController := controllers.NewCustomerController(customerService)
	bookingController := controllers.NewBookingController(bookingService)
	roomController := controllers.NewRoomController(roomService)
	cleaningController := controllers.NewCleaningController(cleaningService)
	cleaningQrController := controllers.NewCleaningQrController(cleaningSyncService)

	router := routes.SetupRouter(
		customerController,
		bookingController,
		roomController,
		cleaningController,
		cleaningQrController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
