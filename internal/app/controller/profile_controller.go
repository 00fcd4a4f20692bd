package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/internal/app/service"
	apperrors "github.com/ejparker/curdboard-backend/internal/errors"
	"github.com/ejparker/curdboard-backend/internal/middleware"
)

type ProfileController struct {
	profileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile returns the logged-in user's review history and stats.
// Anonymous visitors are sent to the login page.
// GET /profile
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	username, _ := middleware.GetUsername(c)

	report, err := ctrl.profileService.Report(username)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		log.Error("Failed to build profile report", err, map[string]interface{}{
			"username": username,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, report)
}
