package feed

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/brewlog-app/brewlog/internal/database"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
	"github.com/brewlog-app/brewlog/internal/services"
)

type feedTestEnv struct {
	ratingRepo *repository.RatingRepository
	beanRepo   *repository.BeanRepository
	service    *services.RatingService
}

func setupFeedTestDB(t *testing.T) *feedTestEnv {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	ratingRepo := repository.NewRatingRepository(db)
	return &feedTestEnv{
		ratingRepo: ratingRepo,
		beanRepo:   repository.NewBeanRepository(db),
		service:    services.NewRatingService(ratingRepo, repository.NewProfileRepository(db)),
	}
}

func (env *feedTestEnv) seedPublicRatings(t *testing.T, beanName string, n int) {
	bean := &models.Bean{
		ID:         uuid.NewString(),
		UserID:     "user-1",
		SupplierID: uuid.NewString(),
		Name:       beanName,
	}
	assert.NoError(t, env.beanRepo.Create(bean))

	for i := 0; i < n; i++ {
		assert.NoError(t, env.ratingRepo.Create(&models.BeanRating{
			ID:           uuid.NewString(),
			UserID:       "user-1",
			BeanID:       bean.ID,
			BrewMethodID: uuid.NewString(),
			Rating:       4.0,
			Notes:        fmt.Sprintf("batch %d", i),
			IsPublic:     true,
		}))
	}
}

func TestFeed_LoadMore_Pages(t *testing.T) {
	env := setupFeedTestDB(t)
	env.seedPublicRatings(t, "Yirgacheffe", 15)

	f := New(env.service, 10)

	items := f.LoadMore()
	assert.Len(t, items, 10)
	assert.True(t, f.HasMore())

	items = f.LoadMore()
	assert.Len(t, items, 15)
	assert.False(t, f.HasMore(), "short page means the feed is exhausted")
}

func TestFeed_LoadMore_DeduplicatesAcrossPageBoundary(t *testing.T) {
	env := setupFeedTestDB(t)
	env.seedPublicRatings(t, "Yirgacheffe", 15)

	f := New(env.service, 10)
	f.LoadMore()

	// A rating inserted between loads shifts the offset window, so the
	// second page re-serves rows from the first. Those must not repeat.
	env.seedPublicRatings(t, "Bourbon", 1)

	items := f.LoadMore()
	seen := make(map[string]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID], "rating %s displayed twice", item.ID)
		seen[item.ID] = true
	}
}

func TestFeed_ClientKeysAreUnique(t *testing.T) {
	env := setupFeedTestDB(t)
	env.seedPublicRatings(t, "Yirgacheffe", 5)

	f := New(env.service, 10)
	items := f.LoadMore()

	keys := make(map[string]bool)
	for _, item := range items {
		assert.NotEmpty(t, item.ClientKey)
		assert.False(t, keys[item.ClientKey])
		keys[item.ClientKey] = true
	}
}

func TestFeed_Search_ReplacesListAndDisablesPaging(t *testing.T) {
	env := setupFeedTestDB(t)
	env.seedPublicRatings(t, "Panama Geisha", 3)
	env.seedPublicRatings(t, "Brazil Bourbon", 12)

	f := New(env.service, 10)
	f.LoadMore()

	items := f.Search("geisha")
	assert.Len(t, items, 3)
	assert.True(t, f.Searching())
	assert.False(t, f.HasMore())

	// LoadMore is a no-op while searching.
	items = f.LoadMore()
	assert.Len(t, items, 3)
}

func TestFeed_Search_EmptyQueryResetsToFirstPage(t *testing.T) {
	env := setupFeedTestDB(t)
	env.seedPublicRatings(t, "Panama Geisha", 3)
	env.seedPublicRatings(t, "Brazil Bourbon", 12)

	f := New(env.service, 10)
	f.LoadMore()
	f.LoadMore()
	f.Search("geisha")

	items := f.Search("")
	assert.Len(t, items, 10)
	assert.False(t, f.Searching())
	assert.True(t, f.HasMore())
}

func TestFeed_Search_NoMatches(t *testing.T) {
	env := setupFeedTestDB(t)
	env.seedPublicRatings(t, "Yirgacheffe", 3)

	f := New(env.service, 10)

	items := f.Search("liberica")
	assert.Empty(t, items)
	assert.True(t, f.Searching())
}

func TestFeed_EmptyDatabase(t *testing.T) {
	env := setupFeedTestDB(t)

	f := New(env.service, 10)
	items := f.LoadMore()
	assert.Empty(t, items)
	assert.False(t, f.HasMore())
}
