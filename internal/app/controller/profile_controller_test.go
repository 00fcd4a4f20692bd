package controller

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/ejparker/curdboard-backend/internal/app/service"
	"github.com/ejparker/curdboard-backend/internal/middleware"
	"github.com/ejparker/curdboard-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProfileControllerTest(t *testing.T) (*gin.Engine, *repository.ReviewRepository) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	businessRepo := repository.NewBusinessRepository(filepath.Join(dir, "businesses.json"))
	reviewRepo := repository.NewReviewRepository(filepath.Join(dir, "reviews.json"))

	require.NoError(t, businessRepo.Save([]model.Business{
		{ID: 1, Name: "Gouda Times", Category: "Shop"},
	}))

	profileService := service.NewProfileService(reviewRepo, businessRepo)
	ctrl := NewProfileController(profileService)
	sessionMiddleware := middleware.NewSessionMiddleware("test-secret", "session")

	router := gin.New()
	router.Use(sessionMiddleware.LoadSession())
	router.GET("/profile", ctrl.GetProfile)

	return router, reviewRepo
}

func sessionCookieFor(t *testing.T, username string) *http.Cookie {
	t.Helper()
	token, err := util.GenerateSessionToken(username, nil, "test-secret", time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: "session", Value: token}
}

func TestProfileController_RequiresLogin(t *testing.T) {
	router, _ := setupProfileControllerTest(t)

	w := getPage(router, "/profile", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProfileController_ZeroReviews(t *testing.T) {
	router, _ := setupProfileControllerTest(t)

	w := getPage(router, "/profile", []*http.Cookie{sessionCookieFor(t, "alice")})
	require.Equal(t, http.StatusOK, w.Code)

	var report service.ProfileReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 0, report.TotalReviews)
	assert.Nil(t, report.AvgRating)
}

func TestProfileController_WithReviews(t *testing.T) {
	router, reviewRepo := setupProfileControllerTest(t)

	_, err := reviewRepo.Append(model.Review{BusinessID: "1", Rating: 4, User: "alice", Comment: "nice"})
	require.NoError(t, err)

	w := getPage(router, "/profile", []*http.Cookie{sessionCookieFor(t, "alice")})
	require.Equal(t, http.StatusOK, w.Code)

	var report service.ProfileReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "alice", report.Username)
	assert.Equal(t, 1, report.TotalReviews)
	require.NotNil(t, report.AvgRating)
	assert.Equal(t, 4.0, *report.AvgRating)
	require.Len(t, report.Reviews, 1)
	assert.Equal(t, "Gouda Times", report.Reviews[0].BusinessName)
}
