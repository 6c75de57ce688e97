package pages

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/KevinDKao/restaurant-website/internal/catalog"
	"github.com/KevinDKao/restaurant-website/internal/view"

	"github.com/gin-gonic/gin"
)

const (
	notFoundMessage  = "Restaurant not found"
	noReviewsMessage = "No reviews yet. Be the first to review this restaurant!"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

// Render is the catch-all page route: it resolves the view from the request
// path and query and responds with that page's model.
func (h *Handler) Render(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		return
	}

	v := view.Resolve(c.Request.URL.Path, c.Request.URL.Query())

	switch v.Kind {
	case view.KindAddReview:
		h.addReview(c, v)
	case view.KindRestaurantDetail:
		h.restaurantDetail(c, v)
	default:
		h.home(c)
	}
}

func detailURL(id string) string { return "/restaurant/" + id }

func reviewURL(id string) string {
	return fmt.Sprintf("/add-review?restaurant_id=%s", id)
}

// --------------------------------------------------
// Home: filters + restaurant cards
// --------------------------------------------------
func (h *Handler) home(c *gin.Context) {
	criteria := catalog.CriteriaFromQuery(c)
	sortKey := catalog.SortFromQuery(c)

	summaries, err := h.service.ListRestaurants(c.Request.Context(), criteria, sortKey)
	if err != nil {
		h.fail(c, err)
		return
	}
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	cards := make([]Card, 0, len(summaries))
	for _, s := range summaries {
		cards = append(cards, Card{
			Summary:   s,
			DetailURL: detailURL(s.ID),
			ReviewURL: reviewURL(s.ID),
		})
	}

	c.JSON(http.StatusOK, HomePage{
		View: view.KindHome.String(),
		Filters: Filters{
			Criteria: criteria,
			Sort:     sortKey,
		},
		Options:     opts,
		Restaurants: cards,
	})
}

// --------------------------------------------------
// Restaurant detail
// --------------------------------------------------
func (h *Handler) restaurantDetail(c *gin.Context, v view.View) {
	detail, err := h.service.GetRestaurantDetail(c.Request.Context(), v.RestaurantID)
	if err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, DetailPage{
				View:    view.KindRestaurantDetail.String(),
				Message: notFoundMessage,
			})
			return
		}
		h.fail(c, err)
		return
	}

	page := DetailPage{
		View:       view.KindRestaurantDetail.String(),
		Restaurant: detail,
		ReviewURL:  reviewURL(detail.ID),
	}
	if len(detail.Reviews) == 0 {
		page.Message = noReviewsMessage
	}

	c.JSON(http.StatusOK, page)
}

// --------------------------------------------------
// Add review form
// --------------------------------------------------
func (h *Handler) addReview(c *gin.Context, v view.View) {
	summaries, err := h.service.ListRestaurants(
		c.Request.Context(),
		catalog.AllCriteria(),
		"",
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	choices := make([]Choice, 0, len(summaries))
	for _, s := range summaries {
		choices = append(choices, Choice{ID: s.ID, Name: s.Name})
	}

	ratings := make([]int, 0, catalog.MaxRating)
	for r := catalog.MaxRating; r >= catalog.MinRating; r-- {
		ratings = append(ratings, r)
	}

	c.JSON(http.StatusOK, AddReviewPage{
		View:                 view.KindAddReview.String(),
		Restaurants:          choices,
		Ratings:              ratings,
		SelectedRestaurantID: v.RestaurantID,
		SubmitURL:            "/api/reviews",
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	log.Printf("[PAGES] render %s failed: %v", c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render page"})
}
