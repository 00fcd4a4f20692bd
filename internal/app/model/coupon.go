package model

// Coupon is an opaque record passed through to the deals page unmodified.
// The shape is owned by whoever maintains coupons.json, so no fields are
// pinned down here.
type Coupon map[string]any
