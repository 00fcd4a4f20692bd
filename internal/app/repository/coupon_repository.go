package repository

import (
	"github.com/ejparker/curdboard-backend/internal/app/model"
)

// CouponRepository reads the coupon collection. Coupons are maintained
// externally; this service never writes them.
type CouponRepository struct {
	path string
}

func NewCouponRepository(path string) *CouponRepository {
	return &CouponRepository{path: path}
}

func (r *CouponRepository) FindAll() []model.Coupon {
	return readDocument[model.Coupon](r.path)
}
