package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "businesses.json")

	records := readDocument[model.Business](path)
	assert.NotNil(t, records)
	assert.Len(t, records, 0)
}

func TestReadDocument_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "businesses.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	records := readDocument[model.Business](path)
	assert.Len(t, records, 0)
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "businesses.json")

	want := []model.Business{
		{ID: 1, Name: "The Cheese Wheel", Category: "Shop", AvgRating: 4.5, RatingsCount: 2},
		{ID: 2, Name: "Brie Encounter", Category: "Cafe", Favorite: true},
	}
	require.NoError(t, writeDocument(path, want))

	got := readDocument[model.Business](path)
	assert.Equal(t, want, got)

	// Pretty-printed, so the file is line-per-field
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  \"name\": \"The Cheese Wheel\"")
}

func TestWriteDocument_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviews.json")

	require.NoError(t, writeDocument(path, []model.Review{{BusinessID: "1", Rating: 5}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "reviews.json", entries[0].Name())
}

func TestBusinessRepository_FindByID(t *testing.T) {
	repo := NewBusinessRepository(filepath.Join(t.TempDir(), "businesses.json"))
	require.NoError(t, repo.Save([]model.Business{
		{ID: 1, Name: "The Cheese Wheel"},
		{ID: 2, Name: "Brie Encounter"},
	}))

	biz, found := repo.FindByID(2)
	require.True(t, found)
	assert.Equal(t, "Brie Encounter", biz.Name)

	_, found = repo.FindByID(99)
	assert.False(t, found)
}

func TestBusinessRepository_UpdateUnknownIDKeepsContent(t *testing.T) {
	repo := NewBusinessRepository(filepath.Join(t.TempDir(), "businesses.json"))
	seed := []model.Business{{ID: 1, Name: "The Cheese Wheel"}}
	require.NoError(t, repo.Save(seed))

	require.NoError(t, repo.Update(model.Business{ID: 99, Name: "Ghost"}))
	assert.Equal(t, seed, repo.FindAll())
}

func TestUserRepository_FindByUsernameCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, repo.Append(model.User{Username: "Alice", PasswordHash: "hash"}))

	user, found := repo.FindByUsername("aLiCe")
	require.True(t, found)
	assert.Equal(t, "Alice", user.Username)

	_, found = repo.FindByUsername("bob")
	assert.False(t, found)
}

func TestReviewRepository_AppendAndFilter(t *testing.T) {
	repo := NewReviewRepository(filepath.Join(t.TempDir(), "reviews.json"))

	_, err := repo.Append(model.Review{BusinessID: "1", Rating: 5, User: "Alice"})
	require.NoError(t, err)
	_, err = repo.Append(model.Review{BusinessID: "2", Rating: 3, User: "bob"})
	require.NoError(t, err)
	reviews, err := repo.Append(model.Review{BusinessID: "1", Rating: 4, User: " alice "})
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	assert.Len(t, repo.FindByBusinessID("1"), 2)
	assert.Len(t, repo.FindByBusinessID("3"), 0)

	// Username matching ignores case and surrounding whitespace
	assert.Len(t, repo.FindByUser("ALICE"), 2)
}
