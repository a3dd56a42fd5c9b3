package favorites

import (
	"context"

	"github.com/mbopage/ezycook-cli/internal/client/models"
)

// Repository is the local favorites cache. It is a full snapshot store: every
// write carries the complete recipe, and reads never touch the network.
type Repository interface {
	// Upsert inserts the recipe or fully overwrites the stored copy with the
	// same id.
	Upsert(ctx context.Context, recipe *models.Recipe) error

	// Delete removes the favorite by recipe id. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a favorite with the given id is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// ListAll returns all favorites ordered by title ascending.
	ListAll(ctx context.Context) ([]models.Recipe, error)
}
