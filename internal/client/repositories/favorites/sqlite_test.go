package favorites

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
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

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sampleRecipe(id, title string) *models.Recipe {
	return &models.Recipe{
		ID:          id,
		Title:       title,
		Description: "desc of " + title,
		Ingredients: []models.Ingredient{
			{Name: "egg", Quantity: strPtr("2")},
			{Name: "salt"},
		},
		Tools:    []string{"Gas Cooker", "Pan"},
		MealTime: strPtr("breakfast"),
		Servings: intPtr(2),
		ImageURL: strPtr("/uploads/" + id + ".jpg"),
		VideoURL: strPtr("https://example.com/v/" + id),
	}
}

func TestUpsert_InsertAndListRoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	want := sampleRecipe("id1", "Omelette")
	require.NoError(t, r.Upsert(ctx, want))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *want, got[0])
}

func TestUpsert_OverwritesAllFields(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleRecipe("id1", "Omelette")))

	updated := &models.Recipe{
		ID:          "id1",
		Title:       "Plain Omelette",
		Description: "simpler",
		Ingredients: []models.Ingredient{{Name: "egg"}},
	}
	require.NoError(t, r.Upsert(ctx, updated))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *updated, got[0])
	assert.Nil(t, got[0].MealTime)
	assert.Nil(t, got[0].ImageURL)
}

func TestListAll_OrderedByTitle(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleRecipe("1", "Waffles")))
	require.NoError(t, r.Upsert(ctx, sampleRecipe("2", "Arepas")))
	require.NoError(t, r.Upsert(ctx, sampleRecipe("3", "Pancakes")))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Arepas", got[0].Title)
	assert.Equal(t, "Pancakes", got[1].Title)
	assert.Equal(t, "Waffles", got[2].Title)
}

func TestExists(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	ok, err := r.Exists(ctx, "id1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Upsert(ctx, sampleRecipe("id1", "Omelette")))

	ok, err = r.Exists(ctx, "id1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete_AbsentIDIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	assert.NoError(t, r.Delete(context.Background(), "missing"))
}

func TestDelete_RemovesRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleRecipe("id1", "Omelette")))
	require.NoError(t, r.Delete(ctx, "id1"))

	ok, err := r.Exists(ctx, "id1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAll_CorruptListBlobDegradesToEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO favorites (id, title, ingredients, tools)
		VALUES ('id1', 'Broken', X'00FF', 'not-json')`)
	require.NoError(t, err)

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Ingredients)
	assert.Empty(t, got[0].Tools)
}

func TestRepository_PersistenceFailuresWrapErrStorage(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	r := NewSQLiteRepository(db)
	ctx := context.Background()

	err := r.Upsert(ctx, sampleRecipe("id1", "Omelette"))
	assert.True(t, errors.Is(err, common.ErrStorage))

	err = r.Delete(ctx, "id1")
	assert.True(t, errors.Is(err, common.ErrStorage))

	_, err = r.Exists(ctx, "id1")
	assert.True(t, errors.Is(err, common.ErrStorage))

	_, err = r.ListAll(ctx)
	assert.True(t, errors.Is(err, common.ErrStorage))
}
