package model

import "strconv"

// AnonymousUser is recorded when a review is submitted without a name
// and without a logged-in session.
const AnonymousUser = "Anonymous"

// Review is one user's rating and comment for one business. Reviews are
// append-only: never edited or deleted by this service.
//
// BusinessID is a string-encoded integer in the persisted document. The
// reference is loose: a business removed externally leaves its reviews
// orphaned.
type Review struct {
	BusinessID string `json:"business_id"`
	Rating     int    `json:"rating"` // 1..5
	Comment    string `json:"comment"`
	User       string `json:"user"`
}

// BusinessKey encodes a numeric business ID the way reviews reference it.
func BusinessKey(id int) string {
	return strconv.Itoa(id)
}
