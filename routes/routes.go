package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rate-calendar-backend/controllers"
	"rate-calendar-backend/middleware"
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

// SetupRouter wires the controller instances into the route tree.
func SetupRouter(
	cc *controllers.CalendarController,
	oc *controllers.OverrideController,
	pc *controllers.PricingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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
		api.GET("/calendar", cc.GetCalendar)

		pricing := api.Group("/pricing")
		{
			pricing.POST("/preview", pc.PreviewSellRate)
		}

		overrides := api.Group("/overrides")
		{
			overrides.PUT("", oc.SetOverride)
			overrides.DELETE("", oc.ClearOverride)
			overrides.POST("/submit", oc.SubmitOverrides)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/rates/:hotelID", controllers.GetRateSettings)
			settings.PUT("/rates/:hotelID", controllers.UpdateRateSettings)
			settings.GET("/calculator/:hotelID", controllers.GetCalculatorSettings)
			settings.PUT("/calculator/:hotelID", controllers.UpdateCalculatorSettings)
		}

		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("", controllers.GetCampaigns)
			campaigns.POST("", controllers.CreateCampaign)
			campaigns.DELETE("/:id", controllers.DeleteCampaign)
		}
	}

	return r
}
