package catalog

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CriteriaFromQuery reads the listing filters, defaulting each to All.
func CriteriaFromQuery(c *gin.Context) Criteria {
	return Criteria{
		Cuisine:    c.DefaultQuery("cuisine", All),
		Location:   c.DefaultQuery("location", All),
		PriceRange: c.DefaultQuery("price_range", All),
	}
}

// SortFromQuery reads the sort key, defaulting to DefaultSort.
func SortFromQuery(c *gin.Context) SortKey {
	return SortKey(c.DefaultQuery("sort", string(DefaultSort)))
}

// --------------------------------------------------
// GET /api/restaurants
// --------------------------------------------------
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.service.ListRestaurants(
		c.Request.Context(),
		CriteriaFromQuery(c),
		SortFromQuery(c),
	)
	if err != nil {
		log.Printf("[CATALOG] list restaurants failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// --------------------------------------------------
// GET /api/restaurants/:id
// --------------------------------------------------
func (h *Handler) GetRestaurant(c *gin.Context) {
	detail, err := h.service.GetRestaurantDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[CATALOG] get restaurant failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// --------------------------------------------------
// GET /api/restaurants/:id/reviews
// --------------------------------------------------
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.service.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[CATALOG] list reviews failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// --------------------------------------------------
// GET /api/options
// --------------------------------------------------
func (h *Handler) GetOptions(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		log.Printf("[CATALOG] options failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch options"})
		return
	}

	c.JSON(http.StatusOK, opts)
}

// --------------------------------------------------
// POST /api/reviews
// --------------------------------------------------
func (h *Handler) CreateReview(c *gin.Context) {
	var req ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.service.AppendReview(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": verr.Error(),
				"field": verr.Field,
			})
			return
		}
		log.Printf("[CATALOG] append review failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
