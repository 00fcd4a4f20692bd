package service

import (
	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
)

// CouponService lists deals for the home page. Coupons are opaque
// records: read, never interpreted or written.
type CouponService struct {
	couponRepo *repository.CouponRepository
}

func NewCouponService(couponRepo *repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

func (s *CouponService) ListCoupons() []model.Coupon {
	return s.couponRepo.FindAll()
}
