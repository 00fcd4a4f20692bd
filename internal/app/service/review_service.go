package service

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/ejparker/curdboard-backend/pkg/logger"
)

var ErrBusinessNotFound = errors.New("business not found")

// BusinessDetail is the detail-page payload: one business plus its reviews.
type BusinessDetail struct {
	Business model.Business `json:"business"`
	Reviews  []model.Review `json:"reviews"`
}

// ReviewService appends reviews and keeps each business's rating
// aggregates in line with its review set.
type ReviewService struct {
	reviewRepo   *repository.ReviewRepository
	businessRepo *repository.BusinessRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, businessRepo *repository.BusinessRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
	}
}

// SubmitReview records a rating+comment for a business.
//
// The reviewer name falls back from the form value to the session
// identity to the anonymous marker. Non-numeric ratings coerce to 0,
// and anything outside 1..5 is silently dropped: nothing is written and
// no error is surfaced. Accepted reviews are appended and the target
// business's avg_rating (2 decimals) and ratings_count are recomputed
// and persisted.
func (s *ReviewService) SubmitReview(businessID int, ratingStr, comment, formUser, sessionUser string) error {
	biz, exists := s.businessRepo.FindByID(businessID)
	if !exists {
		return ErrBusinessNotFound
	}

	user := strings.TrimSpace(formUser)
	if user == "" {
		user = strings.TrimSpace(sessionUser)
	}
	if user == "" {
		user = model.AnonymousUser
	}

	rating, err := strconv.Atoi(strings.TrimSpace(ratingStr))
	if err != nil {
		rating = 0
	}
	if rating < 1 || rating > 5 {
		logger.Warn("Dropping review with out-of-range rating", map[string]interface{}{
			"business_id": businessID,
			"rating":      rating,
		})
		return nil
	}

	review := model.Review{
		BusinessID: model.BusinessKey(businessID),
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
		User:       user,
	}

	reviews, err := s.reviewRepo.Append(review)
	if err != nil {
		logger.Error("Failed to persist review", err, map[string]interface{}{
			"business_id": businessID,
		})
		return err
	}

	avg, count := aggregateRatings(reviews, review.BusinessID)
	biz.AvgRating = avg
	biz.RatingsCount = count
	if err := s.businessRepo.Update(*biz); err != nil {
		logger.Error("Failed to persist rating aggregates", err, map[string]interface{}{
			"business_id": businessID,
		})
		return err
	}

	logger.Info("Review recorded", map[string]interface{}{
		"business_id":   businessID,
		"rating":        rating,
		"user":          user,
		"avg_rating":    avg,
		"ratings_count": count,
	})

	return nil
}

// GetBusinessDetail returns a business with its reviews.
func (s *ReviewService) GetBusinessDetail(businessID int) (*BusinessDetail, error) {
	biz, exists := s.businessRepo.FindByID(businessID)
	if !exists {
		return nil, ErrBusinessNotFound
	}

	reviews := s.reviewRepo.FindByBusinessID(model.BusinessKey(businessID))
	return &BusinessDetail{
		Business: *biz,
		Reviews:  reviews,
	}, nil
}

// ReconcileRatings recomputes every business's aggregates from the
// review collection and persists the collection when anything drifted.
// Aggregates drift when reviews.json is edited outside this service;
// submission-time recomputation never sees that. Returns the number of
// corrected businesses.
func (s *ReviewService) ReconcileRatings() (int, error) {
	businesses := s.businessRepo.FindAll()
	reviews := s.reviewRepo.FindAll()

	corrected := 0
	for i, biz := range businesses {
		avg, count := aggregateRatings(reviews, model.BusinessKey(biz.ID))
		if count == 0 {
			// Never rated through this service: leave seeded values alone.
			continue
		}
		if biz.AvgRating != avg || biz.RatingsCount != count {
			businesses[i].AvgRating = avg
			businesses[i].RatingsCount = count
			corrected++
		}
	}

	if corrected == 0 {
		return 0, nil
	}
	if err := s.businessRepo.Save(businesses); err != nil {
		return 0, err
	}

	logger.Info("Rating aggregates reconciled", map[string]interface{}{
		"corrected": corrected,
	})
	return corrected, nil
}

// aggregateRatings computes the mean (2 decimals) and count of ratings
// referencing the given business key.
func aggregateRatings(reviews []model.Review, businessKey string) (float64, int) {
	sum, count := 0, 0
	for _, r := range reviews {
		if r.BusinessID == businessKey {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return round2(float64(sum) / float64(count)), count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
