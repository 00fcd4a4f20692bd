package service

import (
	"errors"
	"strconv"

	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/ejparker/curdboard-backend/pkg/logger"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Fallbacks for reviews whose business was removed externally.
const (
	unknownBusinessName = "Unknown Business"
	fallbackCategory    = "Other"
)

// ProfileReview is one entry in a user's review history, joined to its
// business.
type ProfileReview struct {
	BusinessID   int    `json:"business_id"`
	BusinessName string `json:"business_name"`
	Category     string `json:"category"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// ProfileReport summarizes a user's review history. AvgRating is nil
// (not zero) when the user has no reviews, and TopCategory likewise.
type ProfileReport struct {
	Username     string          `json:"username"`
	Reviews      []ProfileReview `json:"reviews"`
	TotalReviews int             `json:"total_reviews"`
	AvgRating    *float64        `json:"avg_rating"`
	TopCategory  *string         `json:"top_category"`
}

// ProfileService derives review history and summary stats on read;
// nothing is stored per profile.
type ProfileService struct {
	reviewRepo   *repository.ReviewRepository
	businessRepo *repository.BusinessRepository
}

func NewProfileService(reviewRepo *repository.ReviewRepository, businessRepo *repository.BusinessRepository) *ProfileService {
	return &ProfileService{
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
	}
}

// Report builds the profile for the given identity. The username comes
// from the caller's session; an empty one means nobody is logged in.
func (s *ProfileService) Report(username string) (*ProfileReport, error) {
	if username == "" {
		return nil, ErrNotAuthenticated
	}

	businessByKey := make(map[string]model.Business)
	for _, b := range s.businessRepo.FindAll() {
		businessByKey[model.BusinessKey(b.ID)] = b
	}

	reviews := s.reviewRepo.FindByUser(username)
	profileReviews := make([]ProfileReview, 0, len(reviews))
	for _, r := range reviews {
		id, _ := strconv.Atoi(r.BusinessID)
		entry := ProfileReview{
			BusinessID:   id,
			BusinessName: unknownBusinessName,
			Rating:       r.Rating,
			Comment:      r.Comment,
		}
		if biz, ok := businessByKey[r.BusinessID]; ok {
			entry.BusinessName = biz.Name
			entry.Category = biz.Category
		}
		profileReviews = append(profileReviews, entry)
	}

	report := &ProfileReport{
		Username:     username,
		Reviews:      profileReviews,
		TotalReviews: len(profileReviews),
	}
	if len(profileReviews) > 0 {
		sum := 0
		for _, r := range profileReviews {
			sum += r.Rating
		}
		avg := round2(float64(sum) / float64(len(profileReviews)))
		report.AvgRating = &avg
		report.TopCategory = topCategory(profileReviews)
	}

	logger.Debug("Profile report built", map[string]interface{}{
		"username":      username,
		"total_reviews": report.TotalReviews,
	})

	return report, nil
}

// topCategory picks the most frequent category of the user's reviews;
// ties go to the category encountered first.
func topCategory(reviews []ProfileReview) *string {
	counts := make(map[string]int)
	var order []string
	for _, r := range reviews {
		cat := r.Category
		if cat == "" {
			cat = fallbackCategory
		}
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}

	var best string
	bestCount := 0
	for _, cat := range order {
		if counts[cat] > bestCount {
			best = cat
			bestCount = counts[cat]
		}
	}
	if bestCount == 0 {
		return nil
	}
	return &best
}
