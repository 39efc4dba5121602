package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewlog-app/brewlog/internal/models"
)

func tempStorePath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "brewlog.json")
}

func TestStore_OpenMissingFile(t *testing.T) {
	store, err := Open(tempStorePath(t))
	assert.NoError(t, err)
	assert.Empty(t, store.List())
}

func TestStore_AddAssignsID(t *testing.T) {
	store, err := Open(tempStorePath(t))
	assert.NoError(t, err)

	added, err := store.Add(models.CoffeeExtraction{Date: "2026-08-30", BeanName: "Yirgacheffe", Rating: 4})
	assert.NoError(t, err)
	assert.NotEmpty(t, added.ID)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := tempStorePath(t)

	store, err := Open(path)
	assert.NoError(t, err)

	added, err := store.Add(models.CoffeeExtraction{Date: "2026-08-30", BeanName: "Yirgacheffe", Rating: 4})
	assert.NoError(t, err)

	reopened, err := Open(path)
	assert.NoError(t, err)

	items := reopened.List()
	assert.Len(t, items, 1)
	assert.Equal(t, added.ID, items[0].ID)
	assert.Equal(t, "Yirgacheffe", items[0].BeanName)
}

func TestStore_ListNewestDateFirst(t *testing.T) {
	store, err := Open(tempStorePath(t))
	assert.NoError(t, err)

	for _, date := range []string{"2026-08-28", "2026-08-30", "2026-08-29"} {
		_, err := store.Add(models.CoffeeExtraction{Date: date, BeanName: "Yirgacheffe", Rating: 3})
		assert.NoError(t, err)
	}

	items := store.List()
	assert.Equal(t, "2026-08-30", items[0].Date)
	assert.Equal(t, "2026-08-28", items[2].Date)
}

func TestStore_UpdateAndDelete(t *testing.T) {
	store, err := Open(tempStorePath(t))
	assert.NoError(t, err)

	added, err := store.Add(models.CoffeeExtraction{Date: "2026-08-30", BeanName: "Yirgacheffe", Rating: 4})
	assert.NoError(t, err)

	added.Rating = 5
	assert.NoError(t, store.Update(*added))

	stored, err := store.Get(added.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)

	assert.NoError(t, store.Delete(added.ID))
	assert.Equal(t, ErrNotFound, store.Delete(added.ID))
	_, err = store.Get(added.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestStore_OpenCorruptFile(t *testing.T) {
	path := tempStorePath(t)
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}
