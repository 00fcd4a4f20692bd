package repository

import (
	"strings"

	"github.com/ejparker/curdboard-backend/internal/app/model"
)

// UserRepository persists the account collection.
type UserRepository struct {
	path string
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

func (r *UserRepository) FindAll() []model.User {
	return readDocument[model.User](r.path)
}

// FindByUsername looks up an account case-insensitively.
func (r *UserRepository) FindByUsername(username string) (*model.User, bool) {
	want := strings.ToLower(username)
	for _, u := range r.FindAll() {
		if strings.ToLower(u.Username) == want {
			return &u, true
		}
	}
	return nil, false
}

// Append adds a verified account and persists the collection.
func (r *UserRepository) Append(user model.User) error {
	return writeDocument(r.path, append(r.FindAll(), user))
}
