package favorites

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/common"
	"github.com/mbopage/ezycook-cli/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx). Ingredient and tool lists are stored as JSON blobs.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts the recipe or overwrites every stored column for the same id.
func (r *SQLiteRepository) Upsert(ctx context.Context, recipe *models.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	tools, err := json.Marshal(recipe.Tools)
	if err != nil {
		return fmt.Errorf("failed to encode tools: %w", err)
	}

	query := `INSERT INTO favorites
			(id, title, description, meal_time, servings, image_url, video_url, created_at, updated_at, ingredients, tools)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET title = excluded.title,
				description = excluded.description,
				meal_time = excluded.meal_time,
				servings = excluded.servings,
				image_url = excluded.image_url,
				video_url = excluded.video_url,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at,
				ingredients = excluded.ingredients,
				tools = excluded.tools
	`
	_, err = r.db.ExecContext(ctx, query,
		recipe.ID, recipe.Title, recipe.Description,
		recipe.MealTime, recipe.Servings, recipe.ImageURL, recipe.VideoURL,
		recipe.CreatedAt, recipe.UpdatedAt, ingredients, tools)
	if err != nil {
		return fmt.Errorf("%w: failed to upsert favorite: %w", common.ErrStorage, err)
	}
	return nil
}

// Delete removes the favorite by id. Absent ids are a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete favorite: %w", common.ErrStorage, err)
	}
	return nil
}

// Exists reports whether id is currently favorited.
func (r *SQLiteRepository) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check favorite: %w", common.ErrStorage, err)
	}
	return n > 0, nil
}

// ListAll returns all favorites ordered by title ascending. Undecodable list
// blobs degrade to empty slices instead of failing the whole listing.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Recipe, error) {
	query := `SELECT id, title, description, meal_time, servings, image_url, video_url,
			created_at, updated_at, ingredients, tools
			FROM favorites ORDER BY title ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select favorites: %w", common.ErrStorage, err)
	}
	defer rows.Close()

	var result []models.Recipe
	for rows.Next() {
		var item models.Recipe
		var ingredients, tools []byte
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.MealTime, &item.Servings, &item.ImageURL, &item.VideoURL,
			&item.CreatedAt, &item.UpdatedAt, &ingredients, &tools); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(ingredients, &item.Ingredients); err != nil {
			item.Ingredients = []models.Ingredient{}
		}
		if err := json.Unmarshal(tools, &item.Tools); err != nil {
			item.Tools = []string{}
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
