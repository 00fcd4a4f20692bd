package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/internal/app/service"
	apperrors "github.com/ejparker/curdboard-backend/internal/errors"
	"github.com/ejparker/curdboard-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
	cookie      SessionCookie
}

func NewAuthController(authService service.AuthService, cookie SessionCookie) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
	}
}

// ShowSignup renders the signup page state
// GET /signup
func (ctrl *AuthController) ShowSignup(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	c.JSON(http.StatusOK, gin.H{
		"username": username,
	})
}

// Signup validates the form and stages a pending signup in the session.
// No account exists until the maze is solved.
// POST /signup
func (ctrl *AuthController) Signup(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	username := c.PostForm("username")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm")

	pending, err := ctrl.authService.Signup(username, password, confirm)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("Signup validation failed", map[string]interface{}{
				"error": validationErr.Message,
			})
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, validationErr.Message)
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			apperrors.Conflict(c, apperrors.AuthUsernameExists, "That username is already taken.")
			return
		}
		log.Error("Signup failed", err, map[string]interface{}{
			"username": username,
		})
		apperrors.InternalError(c, "")
		return
	}

	// Keep any existing identity; only the staged signup changes.
	currentUser, _ := middleware.GetUsername(c)
	if err := ctrl.cookie.Write(c, currentUser, pending); err != nil {
		log.Error("Failed to stage pending signup in session", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.Redirect(http.StatusSeeOther, "/signup-maze")
}

// ShowMaze renders the verification challenge, or sends the visitor
// back to the signup form when nothing is staged.
// GET /signup-maze
func (ctrl *AuthController) ShowMaze(c *gin.Context) {
	pending, exists := middleware.GetPendingSignup(c)
	if !exists {
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending_username": pending.Username,
	})
}

// CompleteMaze commits the staged signup once the challenge passes.
// POST /signup-maze
func (ctrl *AuthController) CompleteMaze(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	pending, exists := middleware.GetPendingSignup(c)
	if !exists {
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}

	captchaOK := c.DefaultPostForm("captcha_ok", "0")

	username, err := ctrl.authService.Verify(pending, captchaOK)
	if err != nil {
		if errors.Is(err, service.ErrMazeNotCompleted) {
			// Pending signup stays staged in the cookie for another try.
			apperrors.BadRequest(c, apperrors.AuthMazeNotCompleted,
				"Please complete the maze to prove you're not a bot.")
			return
		}
		if errors.Is(err, service.ErrNoPendingSignup) {
			c.Redirect(http.StatusSeeOther, "/signup")
			return
		}
		log.Error("Maze verification failed", err, map[string]interface{}{
			"username": pending.Username,
		})
		apperrors.InternalError(c, "")
		return
	}

	// Log the new account in and discard the staged signup.
	if err := ctrl.cookie.Write(c, username, nil); err != nil {
		log.Error("Failed to establish session after verification", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.Redirect(http.StatusSeeOther, "/home")
}

// ShowLogin renders the login page state
// GET /login
func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	c.JSON(http.StatusOK, gin.H{
		"username": username,
	})
}

// Login checks credentials and establishes the logged-in identity.
// POST /login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	username := c.PostForm("username")
	password := c.PostForm("password")

	storedName, err := ctrl.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for both unknown user and wrong password.
			apperrors.RespondWithError(c, http.StatusUnauthorized,
				apperrors.AuthInvalidCredentials, "Invalid username or password.")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"username": username,
		})
		apperrors.InternalError(c, "")
		return
	}

	// A staged signup survives login, matching the signup flow.
	pending, _ := middleware.GetPendingSignup(c)
	if err := ctrl.cookie.Write(c, storedName, pending); err != nil {
		log.Error("Failed to establish session", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.Redirect(http.StatusSeeOther, "/home")
}

// Logout clears the logged-in identity unconditionally. A staged
// signup, if any, stays in the session.
// GET /logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if username, exists := middleware.GetUsername(c); exists {
		log.Info("User logged out", map[string]interface{}{
			"username": username,
		})
	}

	pending, _ := middleware.GetPendingSignup(c)
	if err := ctrl.cookie.Write(c, "", pending); err != nil {
		log.Error("Failed to rewrite session on logout", err, nil)
	}

	c.Redirect(http.StatusSeeOther, "/")
}
