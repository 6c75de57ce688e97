package router

import (
	"time"

	"github.com/KevinDKao/restaurant-website/internal/catalog"
	"github.com/KevinDKao/restaurant-website/internal/middleware"
	"github.com/KevinDKao/restaurant-website/internal/pages"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(service *catalog.Service, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			MaxAge:       12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	catalogHandler := catalog.NewHandler(service)
	pagesHandler := pages.NewHandler(service)

	api := r.Group("/api")
	{
		api.GET("/restaurants", catalogHandler.ListRestaurants)
		api.GET("/restaurants/:id", catalogHandler.GetRestaurant)
		api.GET("/restaurants/:id/reviews", catalogHandler.ListReviews)
		api.GET("/options", catalogHandler.GetOptions)
		api.POST("/reviews", catalogHandler.CreateReview)
	}

	// Every other path is a page: /, /add-review, /restaurant/:id, or the
	// home fallback.
	r.NoRoute(pagesHandler.Render)

	return r
}
