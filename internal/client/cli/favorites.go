package cli

import (
	"context"
	"os"

	"github.com/mbopage/ezycook-cli/internal/client/services"
)

// Favorite toggles a recipe in the local favorites cache. The recipe is
// fetched once so the cache holds its full snapshot; after that it is
// available offline.
func (a *App) Favorite(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	a.recipes.Load(ctx, id)
	if status := a.recipes.Status(services.OpRecipeGet); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}

	a.recipes.ToggleFavorite(ctx, a.recipes.Selected())
	if status := a.recipes.Status(services.OpFavorites); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}

	for i := range a.recipes.FavoritesList() {
		if a.recipes.FavoritesList()[i].ID == id {
			printlnFn("Added to favorites")
			return nil
		}
	}
	printlnFn("Removed from favorites")
	return nil
}

// Favorites lists the local favorites cache. Works without a network.
func (a *App) Favorites(ctx context.Context) error {
	a.recipes.LoadFavorites(ctx)

	if status := a.recipes.Status(services.OpFavorites); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	for i := range a.recipes.FavoritesList() {
		a.printRecipeLine(&a.recipes.FavoritesList()[i])
	}
	return nil
}
