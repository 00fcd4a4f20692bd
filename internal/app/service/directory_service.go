package service

import (
	"sort"

	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/ejparker/curdboard-backend/pkg/logger"
)

// Sort keys accepted by the discover page. Anything else falls back to name.
const (
	SortByName     = "name"
	SortByRating   = "rating"
	SortByCategory = "category"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// DirectoryListOptions are the discover page's query parameters.
type DirectoryListOptions struct {
	SortBy        string
	Category      string
	FavoritesOnly bool
}

// DirectoryService filters and sorts the business collection for
// display and flips the favorite flag.
type DirectoryService struct {
	businessRepo *repository.BusinessRepository
}

func NewDirectoryService(businessRepo *repository.BusinessRepository) *DirectoryService {
	return &DirectoryService{businessRepo: businessRepo}
}

// List applies the category filter, then the favorites filter, then the
// requested sort. The returned category set comes from the unfiltered
// collection so the dropdown always offers every category.
func (s *DirectoryService) List(opts DirectoryListOptions) ([]model.Business, []string) {
	all := s.businessRepo.FindAll()

	businesses := make([]model.Business, 0, len(all))
	for _, b := range all {
		if opts.Category != "" && opts.Category != CategoryAll && b.Category != opts.Category {
			continue
		}
		if opts.FavoritesOnly && !b.Favorite {
			continue
		}
		businesses = append(businesses, b)
	}

	switch opts.SortBy {
	case SortByRating:
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].AvgRating > businesses[j].AvgRating
		})
	case SortByCategory:
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].Category < businesses[j].Category
		})
	default:
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].Name < businesses[j].Name
		})
	}

	return businesses, distinctCategories(all)
}

// ToggleFavorite flips the favorite flag on the matching business and
// persists the collection. Unknown ids are a no-op content-wise; the
// collection is rewritten either way.
func (s *DirectoryService) ToggleFavorite(businessID int) error {
	businesses := s.businessRepo.FindAll()
	for i, b := range businesses {
		if b.ID == businessID {
			businesses[i].Favorite = !b.Favorite
			logger.Info("Favorite toggled", map[string]interface{}{
				"business_id": businessID,
				"favorite":    businesses[i].Favorite,
			})
			break
		}
	}
	return s.businessRepo.Save(businesses)
}

func distinctCategories(businesses []model.Business) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, b := range businesses {
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		categories = append(categories, b.Category)
	}
	sort.Strings(categories)
	return categories
}
