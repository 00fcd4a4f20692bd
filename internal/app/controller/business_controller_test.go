package controller

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/ejparker/curdboard-backend/internal/app/service"
	"github.com/ejparker/curdboard-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBusinessControllerTest(t *testing.T) (*gin.Engine, *repository.BusinessRepository, *repository.ReviewRepository) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	businessRepo := repository.NewBusinessRepository(filepath.Join(dir, "businesses.json"))
	reviewRepo := repository.NewReviewRepository(filepath.Join(dir, "reviews.json"))

	require.NoError(t, businessRepo.Save([]model.Business{
		{ID: 1, Name: "Gouda Times", Category: "Shop"},
		{ID: 2, Name: "Brie Encounter", Category: "Cafe", Favorite: true},
	}))

	directoryService := service.NewDirectoryService(businessRepo)
	reviewService := service.NewReviewService(reviewRepo, businessRepo)
	ctrl := NewBusinessController(directoryService, reviewService)
	sessionMiddleware := middleware.NewSessionMiddleware("test-secret", "session")

	router := gin.New()
	router.Use(sessionMiddleware.LoadSession())
	router.GET("/discover", ctrl.Discover)
	router.GET("/business/:id", ctrl.GetBusiness)
	router.POST("/business/:id", ctrl.SubmitReview)
	router.POST("/toggle_favorite/:id", ctrl.ToggleFavorite)

	return router, businessRepo, reviewRepo
}

func TestBusinessController_Discover_Defaults(t *testing.T) {
	router, _, _ := setupBusinessControllerTest(t)

	w := getPage(router, "/discover", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Businesses []model.Business `json:"businesses"`
		Count      int              `json:"count"`
		Categories []string         `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Equal(t, 2, response.Count)
	// Default sort is ascending by name
	assert.Equal(t, "Brie Encounter", response.Businesses[0].Name)
	assert.Equal(t, "Gouda Times", response.Businesses[1].Name)
	assert.Equal(t, []string{"Cafe", "Shop"}, response.Categories)
}

func TestBusinessController_Discover_FavoritesFilter(t *testing.T) {
	router, _, _ := setupBusinessControllerTest(t)

	w := getPage(router, "/discover?favorites=yes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Businesses []model.Business `json:"businesses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Businesses, 1)
	assert.Equal(t, "Brie Encounter", response.Businesses[0].Name)
}

func TestBusinessController_GetBusiness(t *testing.T) {
	router, _, _ := setupBusinessControllerTest(t)

	w := getPage(router, "/business/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gouda Times")

	w = getPage(router, "/business/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getPage(router, "/business/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBusinessController_SubmitReview(t *testing.T) {
	router, businessRepo, reviewRepo := setupBusinessControllerTest(t)

	w := postForm(router, "/business/1", url.Values{
		"rating":  {"5"},
		"comment": {"wonderful"},
		"user":    {"alice"},
	}, nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/business/1", w.Header().Get("Location"))

	reviews := reviewRepo.FindAll()
	require.Len(t, reviews, 1)
	assert.Equal(t, "1", reviews[0].BusinessID)
	assert.Equal(t, 5, reviews[0].Rating)

	biz, _ := businessRepo.FindByID(1)
	assert.Equal(t, 5.0, biz.AvgRating)
	assert.Equal(t, 1, biz.RatingsCount)
}

func TestBusinessController_SubmitReview_InvalidRatingSilentlyDropped(t *testing.T) {
	router, businessRepo, reviewRepo := setupBusinessControllerTest(t)

	w := postForm(router, "/business/1", url.Values{
		"rating":  {"9"},
		"comment": {"way too enthusiastic"},
	}, nil)

	// Still redirects back like nothing happened
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Len(t, reviewRepo.FindAll(), 0)

	biz, _ := businessRepo.FindByID(1)
	assert.Zero(t, biz.AvgRating)
	assert.Zero(t, biz.RatingsCount)
}

func TestBusinessController_SubmitReview_UnknownBusiness(t *testing.T) {
	router, _, reviewRepo := setupBusinessControllerTest(t)

	w := postForm(router, "/business/99", url.Values{"rating": {"4"}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, reviewRepo.FindAll(), 0)
}

func TestBusinessController_ToggleFavorite(t *testing.T) {
	router, businessRepo, _ := setupBusinessControllerTest(t)

	w := postForm(router, "/toggle_favorite/1", url.Values{}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/discover#biz-1", w.Header().Get("Location"))

	biz, _ := businessRepo.FindByID(1)
	assert.True(t, biz.Favorite)
}

func TestBusinessController_ToggleFavorite_NextTarget(t *testing.T) {
	router, _, _ := setupBusinessControllerTest(t)

	w := postForm(router, "/toggle_favorite/2", url.Values{
		"next": {"/discover?category=Cafe"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/discover?category=Cafe#biz-2", w.Header().Get("Location"))
}
