package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-pricing/controllers"
	"hotel-pricing/middleware"
	"hotel-pricing/utils"
)

// SetupRouter wires the pricing and policy controllers into a gin engine.
func SetupRouter(
	pc *controllers.PricingController,
	plc *controllers.PolicyController,
	corsOrigins []string,
	logger *slog.Logger,
) *gin.Engine {
	utils.RegisterValidatorTagNames()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Tracing(), middleware.Logger(logger))

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
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
		api.GET("/booking/:bookingId/price", pc.GetBookingPrice)
		api.POST("/pricing/quote", pc.QuoteStay)

		api.POST("/hotel/:hotelId/pricing-policy", plc.SavePricingPolicy)
		api.GET("/pricing-policy", plc.GetPricingPolicy)
	}

	return r
}
