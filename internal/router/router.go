package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/config"
	"github.com/ejparker/curdboard-backend/internal/app/controller"
	"github.com/ejparker/curdboard-backend/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	businessController *controller.BusinessController
	profileController  *controller.ProfileController
	pageController     *controller.PageController
	sessionMiddleware  *middleware.SessionMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	businessController *controller.BusinessController,
	profileController *controller.ProfileController,
	pageController *controller.PageController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		businessController: businessController,
		profileController:  profileController,
		pageController:     pageController,
		sessionMiddleware:  sessionMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(r.sessionMiddleware.LoadSession())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Curdboard API is running",
		})
	})

	// Pages
	router.GET("/", r.pageController.Index)
	router.GET("/home", r.pageController.Home)
	router.GET("/faq", r.pageController.FAQ)

	// Account flow
	router.GET("/signup", r.authController.ShowSignup)
	router.POST("/signup", r.authController.Signup)
	router.GET("/signup-maze", r.authController.ShowMaze)
	router.POST("/signup-maze", r.authController.CompleteMaze)
	router.GET("/login", r.authController.ShowLogin)
	router.POST("/login", r.authController.Login)
	router.GET("/logout", r.authController.Logout)

	// Directory
	router.GET("/discover", r.businessController.Discover)
	router.GET("/business/:id", r.businessController.GetBusiness)
	router.POST("/business/:id", r.businessController.SubmitReview)
	router.POST("/toggle_favorite/:id", r.businessController.ToggleFavorite)

	// Profile
	router.GET("/profile", r.profileController.GetProfile)

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
