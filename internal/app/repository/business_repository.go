package repository

import (
	"github.com/ejparker/curdboard-backend/internal/app/model"
)

// BusinessRepository persists the business collection as a single JSON
// document. Every call reloads the file; mutations rewrite it wholesale.
type BusinessRepository struct {
	path string
}

func NewBusinessRepository(path string) *BusinessRepository {
	return &BusinessRepository{path: path}
}

// FindAll returns the full business collection, empty when the file is
// missing or corrupt.
func (r *BusinessRepository) FindAll() []model.Business {
	return readDocument[model.Business](r.path)
}

// FindByID returns the matching business, or false when the id is unknown.
func (r *BusinessRepository) FindByID(id int) (*model.Business, bool) {
	for _, b := range r.FindAll() {
		if b.ID == id {
			return &b, true
		}
	}
	return nil, false
}

// Save replaces the whole collection.
func (r *BusinessRepository) Save(businesses []model.Business) error {
	return writeDocument(r.path, businesses)
}

// Update replaces the stored record with the same ID and persists the
// collection. Unknown IDs leave the collection content untouched, but
// the file is still rewritten, matching the toggle-favorite contract.
func (r *BusinessRepository) Update(business model.Business) error {
	businesses := r.FindAll()
	for i, b := range businesses {
		if b.ID == business.ID {
			businesses[i] = business
			break
		}
	}
	return writeDocument(r.path, businesses)
}
