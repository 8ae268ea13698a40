package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ctc *controllers.CustomerController,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	cc *controllers.CleaningController,
	qc *controllers.CleaningQrController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			// static paths must be registered alongside /:id
			customers.GET("/search", ctc.Search)
			customers.GET("/search-by-field", ctc.SearchByField)
			customers.GET("/detail-by-idnumber", ctc.GetByIDNumber)
			customers.GET("/:id", ctc.GetByID)
			customers.PUT("/:id", ctc.Update)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.Create)
			bookings.GET("/history-by-customer", bc.History)
			bookings.POST("/:id/soft-delete", bc.SoftDelete)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetAll)
			rooms.POST("", rc.Create)
			rooms.PUT("/:id", rc.Update)
			rooms.DELETE("/:id", rc.Delete)
		}

		cleaning := api.Group("/cleaning")
		{
			cleaning.GET("/daily", cc.Daily)
			cleaning.POST("/update", cc.Update)
		}

		cleaningQr := api.Group("/cleaning-qr")
		{
			cleaningQr.POST("/complete", qc.Complete)
		}
	}

	return r
}
