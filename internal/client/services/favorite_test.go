package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/logging"

	_ "modernc.org/sqlite"
)

func setupFavoritesDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:favsvc?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS favorites (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  meal_time TEXT,
  servings INTEGER,
  image_url TEXT,
  video_url TEXT,
  created_at TEXT,
  updated_at TEXT,
  ingredients BLOB,
  tools BLOB
);
DELETE FROM favorites;
`)
	require.NoError(t, err)
	return db
}

func TestFavoriteService_ToggleAddsAndRemoves(t *testing.T) {
	db := setupFavoritesDB(t)
	svc := NewFavoriteService(db, logging.Noop{})
	ctx := context.Background()

	recipe := &models.Recipe{
		ID:          "r1",
		Title:       "Omelette",
		Ingredients: []models.Ingredient{{Name: "egg"}},
	}

	nowFav, err := svc.Toggle(ctx, recipe)
	require.NoError(t, err)
	assert.True(t, nowFav)

	ok, err := svc.IsFavorite(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, ok)

	// toggling again is a clean inverse
	nowFav, err = svc.Toggle(ctx, recipe)
	require.NoError(t, err)
	assert.False(t, nowFav)

	ok, err = svc.IsFavorite(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Concurrent toggles of the same id must never leave more than one row: the
// existence check and the write run inside one transaction, so racing callers
// either serialize or fail, they cannot both insert.
func TestFavoriteService_ConcurrentTogglesKeepSingleRow(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "favorites.db")
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE favorites (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  meal_time TEXT,
  servings INTEGER,
  image_url TEXT,
  video_url TEXT,
  created_at TEXT,
  updated_at TEXT,
  ingredients BLOB,
  tools BLOB
);
`)
	require.NoError(t, err)

	svc := NewFavoriteService(db, logging.Noop{})
	ctx := context.Background()
	recipe := &models.Recipe{ID: "r1", Title: "Omelette"}

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			// losers may fail on a busy database; they must not panic and
			// must not leave a duplicate row behind
			_, _ = svc.Toggle(ctx, recipe)
		}()
	}
	wg.Wait()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM favorites WHERE id = ?`, "r1").Scan(&n))
	assert.LessOrEqual(t, n, 1)
}

func TestFavoriteService_ListOrderedByTitle(t *testing.T) {
	db := setupFavoritesDB(t)
	svc := NewFavoriteService(db, logging.Noop{})
	ctx := context.Background()

	for _, r := range []*models.Recipe{
		{ID: "1", Title: "Waffles"},
		{ID: "2", Title: "Arepas"},
	} {
		_, err := svc.Toggle(ctx, r)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Arepas", list[0].Title)
	assert.Equal(t, "Waffles", list[1].Title)
}
