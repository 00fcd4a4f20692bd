package model

// Business is a single directory entry. Entries are seeded externally
// (see cmd/seed); this service only mutates Favorite, AvgRating and
// RatingsCount.
type Business struct {
	ID           int     `json:"id"`            // unique entry ID
	Name         string  `json:"name"`          // display name
	Category     string  `json:"category"`      // directory category
	Favorite     bool    `json:"favorite"`      // user-toggled flag
	AvgRating    float64 `json:"avg_rating"`    // mean of all ratings, 2 decimals
	RatingsCount int     `json:"ratings_count"` // number of submitted ratings
}
