package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/internal/app/service"
	apperrors "github.com/ejparker/curdboard-backend/internal/errors"
	"github.com/ejparker/curdboard-backend/internal/middleware"
)

type BusinessController struct {
	directoryService *service.DirectoryService
	reviewService    *service.ReviewService
}

func NewBusinessController(directoryService *service.DirectoryService, reviewService *service.ReviewService) *BusinessController {
	return &BusinessController{
		directoryService: directoryService,
		reviewService:    reviewService,
	}
}

// Discover lists businesses with sorting and filtering
// GET /discover?sort={name|rating|category}&category={name|all}&favorites={yes|no}
func (ctrl *BusinessController) Discover(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	opts := service.DirectoryListOptions{
		SortBy:        c.DefaultQuery("sort", service.SortByName),
		Category:      c.DefaultQuery("category", service.CategoryAll),
		FavoritesOnly: strings.EqualFold(c.DefaultQuery("favorites", "no"), "yes"),
	}

	businesses, categories := ctrl.directoryService.List(opts)

	log.Info("Businesses listed", map[string]interface{}{
		"count":     len(businesses),
		"sort":      opts.SortBy,
		"category":  opts.Category,
		"favorites": opts.FavoritesOnly,
	})

	c.JSON(http.StatusOK, gin.H{
		"businesses": businesses,
		"count":      len(businesses),
		"categories": categories,
		"sort":       opts.SortBy,
		"category":   opts.Category,
		"favorites":  opts.FavoritesOnly,
	})
}

// GetBusiness shows one business and its reviews
// GET /business/:id
func (ctrl *BusinessController) GetBusiness(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseBusinessID(c)
	if !ok {
		return
	}

	detail, err := ctrl.reviewService.GetBusinessDetail(id)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			log.Warn("Business not found", map[string]interface{}{
				"business_id": id,
			})
			apperrors.NotFound(c, apperrors.BusinessNotFound, "Business not found")
			return
		}
		log.Error("Failed to fetch business", err, map[string]interface{}{
			"business_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business":      detail.Business,
		"reviews":       detail.Reviews,
		"avg_rating":    detail.Business.AvgRating,
		"ratings_count": detail.Business.RatingsCount,
	})
}

// SubmitReview records a rating+comment and returns to the detail page.
// Out-of-range ratings are dropped without an error, like the form
// simply being ignored.
// POST /business/:id
func (ctrl *BusinessController) SubmitReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseBusinessID(c)
	if !ok {
		return
	}

	sessionUser, _ := middleware.GetUsername(c)
	err := ctrl.reviewService.SubmitReview(
		id,
		c.PostForm("rating"),
		c.PostForm("comment"),
		c.PostForm("user"),
		sessionUser,
	)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			apperrors.NotFound(c, apperrors.BusinessNotFound, "Business not found")
			return
		}
		log.Error("Failed to submit review", err, map[string]interface{}{
			"business_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/business/%d", id))
}

// ToggleFavorite flips the favorite flag and redirects back, keeping
// scroll position with a fragment anchor.
// POST /toggle_favorite/:id
func (ctrl *BusinessController) ToggleFavorite(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseBusinessID(c)
	if !ok {
		return
	}

	if err := ctrl.directoryService.ToggleFavorite(id); err != nil {
		log.Error("Failed to toggle favorite", err, map[string]interface{}{
			"business_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	next := c.DefaultPostForm("next", "/discover")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("%s#biz-%d", next, id))
}

func parseBusinessID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid business ID", map[string]interface{}{
			"business_id": idStr,
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid business ID")
		return 0, false
	}
	return id, true
}
