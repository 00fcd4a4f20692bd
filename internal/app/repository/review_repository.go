package repository

import (
	"strings"

	"github.com/ejparker/curdboard-backend/internal/app/model"
)

// ReviewRepository persists the append-only review collection.
type ReviewRepository struct {
	path string
}

func NewReviewRepository(path string) *ReviewRepository {
	return &ReviewRepository{path: path}
}

func (r *ReviewRepository) FindAll() []model.Review {
	return readDocument[model.Review](r.path)
}

// FindByBusinessID returns all reviews referencing the given business key.
func (r *ReviewRepository) FindByBusinessID(businessID string) []model.Review {
	var matched []model.Review
	for _, review := range r.FindAll() {
		if review.BusinessID == businessID {
			matched = append(matched, review)
		}
	}
	return matched
}

// FindByUser returns all reviews left by the given user. Usernames match
// case-insensitively, ignoring surrounding whitespace.
func (r *ReviewRepository) FindByUser(username string) []model.Review {
	want := strings.ToLower(strings.TrimSpace(username))
	var matched []model.Review
	for _, review := range r.FindAll() {
		if strings.ToLower(strings.TrimSpace(review.User)) == want {
			matched = append(matched, review)
		}
	}
	return matched
}

// Append adds a review and persists the collection. The updated
// collection is returned so callers can recompute aggregates from the
// same snapshot they just wrote.
func (r *ReviewRepository) Append(review model.Review) ([]model.Review, error) {
	reviews := append(r.FindAll(), review)
	if err := writeDocument(r.path, reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
