package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/client/repositories/favorites"
	"github.com/mbopage/ezycook-cli/internal/dbx"
	"github.com/mbopage/ezycook-cli/internal/logging"
)

// FavoriteService is the local-only favorites feature. It never touches the
// network, so favoriting keeps working offline.
type FavoriteService interface {
	// Toggle flips the favorite state of recipe and reports the new state:
	// true when the recipe is now a favorite.
	Toggle(ctx context.Context, recipe *models.Recipe) (bool, error)

	// IsFavorite reports whether the recipe id is currently favorited.
	IsFavorite(ctx context.Context, id string) (bool, error)

	// List returns the cached favorites ordered by title.
	List(ctx context.Context) ([]models.Recipe, error)
}

type favoriteService struct {
	db  *sql.DB
	log logging.Logger
}

// NewFavoriteService constructs a FavoriteService on top of the local
// database.
func NewFavoriteService(db *sql.DB, log logging.Logger) FavoriteService {
	return &favoriteService{db: db, log: log}
}

// Toggle runs the existence check and the write in one transaction, so two
// concurrent toggles of the same id cannot both insert or both delete.
func (s *favoriteService) Toggle(ctx context.Context, recipe *models.Recipe) (bool, error) {
	var nowFavorite bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := favorites.NewSQLiteRepository(tx)

		exists, err := repo.Exists(ctx, recipe.ID)
		if err != nil {
			return err
		}
		if exists {
			if err := repo.Delete(ctx, recipe.ID); err != nil {
				return err
			}
			nowFavorite = false
			return nil
		}
		if err := repo.Upsert(ctx, recipe); err != nil {
			return err
		}
		nowFavorite = true
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "favorite toggle failed", "recipe_id", recipe.ID, "error", err)
		return false, fmt.Errorf("favorite toggle error: %w", err)
	}
	return nowFavorite, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, id string) (bool, error) {
	return favorites.NewSQLiteRepository(s.db).Exists(ctx, id)
}

func (s *favoriteService) List(ctx context.Context) ([]models.Recipe, error) {
	return favorites.NewSQLiteRepository(s.db).ListAll(ctx)
}
