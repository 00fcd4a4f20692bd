package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/internal/app/service"
	"github.com/ejparker/curdboard-backend/internal/middleware"
)

// PageController serves the static-ish pages: landing, deals, FAQ.
type PageController struct {
	couponService *service.CouponService
}

func NewPageController(couponService *service.CouponService) *PageController {
	return &PageController{couponService: couponService}
}

// Index is the splash page
// GET /
func (ctrl *PageController) Index(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Welcome to Curdboard",
		"username": username,
	})
}

// Home lists current deals and coupons
// GET /home
func (ctrl *PageController) Home(c *gin.Context) {
	coupons := ctrl.couponService.ListCoupons()
	c.JSON(http.StatusOK, gin.H{
		"coupons": coupons,
		"count":   len(coupons),
	})
}

// FAQ answers the usual questions
// GET /faq
func (ctrl *PageController) FAQ(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"faq": []gin.H{
			{
				"question": "How do ratings work?",
				"answer":   "Every review rates a business 1 to 5. The listing shows the average across all reviews.",
			},
			{
				"question": "Do I need an account to leave a review?",
				"answer":   "No. Reviews without an account are posted as Anonymous.",
			},
			{
				"question": "Why do I have to solve a maze to sign up?",
				"answer":   "The maze keeps bots from creating accounts. Your account is only created after you finish it.",
			},
		},
	})
}
