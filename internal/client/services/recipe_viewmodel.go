package services

import (
	"context"
	"sync"

	"github.com/mbopage/ezycook-cli/internal/client/api"
	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/logging"
)

// recipeAPI is the slice of api.RecipeClient the view-model needs. Kept small
// so tests can substitute a fake.
type recipeAPI interface {
	Create(ctx context.Context, token string, in api.NewRecipe) (models.Recipe, error)
	My(ctx context.Context, token string) ([]models.Recipe, error)
	Filter(ctx context.Context, token string, tools []string, mealTime *string, ingredients []string) ([]models.Recipe, error)
	Suggest(ctx context.Context, token, query string) ([]models.RecipeSuggestion, error)
	GetByID(ctx context.Context, id string) (models.Recipe, error)
	All(ctx context.Context) ([]models.Recipe, error)
	DeleteByID(ctx context.Context, token, id string) error
}

// Recipe operation kinds tracked by RecipeViewModel, one status slot each.
const (
	OpRecipeList    = "recipes.list"
	OpRecipeMy      = "recipes.my"
	OpRecipeFilter  = "recipes.filter"
	OpRecipeSuggest = "recipes.suggest"
	OpRecipeGet     = "recipes.get"
	OpRecipeCreate  = "recipes.create"
	OpRecipeDelete  = "recipes.delete"
	OpFavorites     = "favorites"
)

// RecipeViewModel drives the recipe screens. Every operation kind moves
// through Idle -> Loading -> Success|Failed, and all state lives behind one
// mutex. Operations are not cancelled or de-duplicated: whichever response
// arrives last is the one applied.
//
// Authenticated operations load the session token first; with no session they
// fail immediately with "Not logged in" and never touch the network.
type RecipeViewModel struct {
	client    recipeAPI
	auth      AuthService
	favorites FavoriteService
	log       logging.Logger

	mu          sync.Mutex
	statuses    map[string]OpStatus
	recipes     []models.Recipe
	myRecipes   []models.Recipe
	suggestions []models.RecipeSuggestion
	selected    *models.Recipe
	favList     []models.Recipe
	onChange    func()
}

// NewRecipeViewModel constructs the view-model. All collections start empty
// and every operation starts Idle.
func NewRecipeViewModel(client recipeAPI, auth AuthService, favs FavoriteService, log logging.Logger) *RecipeViewModel {
	return &RecipeViewModel{
		client:    client,
		auth:      auth,
		favorites: favs,
		log:       log,
		statuses:  make(map[string]OpStatus),
	}
}

// OnChange registers a callback invoked after every state transition. Only
// one callback is kept; passing nil unregisters.
func (vm *RecipeViewModel) OnChange(fn func()) {
	vm.mu.Lock()
	vm.onChange = fn
	vm.mu.Unlock()
}

// Status returns the current status of one operation kind.
func (vm *RecipeViewModel) Status(op string) OpStatus {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.statuses[op]
}

// Recipes returns the most recent public listing or filter result.
func (vm *RecipeViewModel) Recipes() []models.Recipe {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.recipes
}

// MyRecipes returns the user's own recipes from the last successful load.
func (vm *RecipeViewModel) MyRecipes() []models.Recipe {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.myRecipes
}

// Suggestions returns the last suggestion result.
func (vm *RecipeViewModel) Suggestions() []models.RecipeSuggestion {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.suggestions
}

// Selected returns the recipe from the last successful Load, or nil.
func (vm *RecipeViewModel) Selected() *models.Recipe {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.selected
}

// FavoritesList returns the last loaded favorites snapshot.
func (vm *RecipeViewModel) FavoritesList() []models.Recipe {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.favList
}

func (vm *RecipeViewModel) setLoading(op string) {
	vm.mu.Lock()
	vm.statuses[op] = OpStatus{State: StateLoading}
	fn := vm.onChange
	vm.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// apply records the outcome of op and mutates the collections under the same
// lock. On failure the previous data is left untouched.
func (vm *RecipeViewModel) apply(ctx context.Context, op string, err error, mutate func()) {
	vm.mu.Lock()
	if err != nil {
		vm.log.Warn(ctx, "operation failed", "op", op, "error", err)
		vm.statuses[op] = OpStatus{State: StateFailed, Err: failureMessage(err)}
	} else {
		vm.statuses[op] = OpStatus{State: StateSuccess}
		if mutate != nil {
			mutate()
		}
	}
	fn := vm.onChange
	vm.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// LoadAll fetches the public recipe collection.
func (vm *RecipeViewModel) LoadAll(ctx context.Context) {
	vm.setLoading(OpRecipeList)
	result, err := vm.client.All(ctx)
	vm.apply(ctx, OpRecipeList, err, func() { vm.recipes = result })
}

// LoadMy fetches the authenticated user's recipes.
func (vm *RecipeViewModel) LoadMy(ctx context.Context) {
	vm.setLoading(OpRecipeMy)
	token, err := vm.auth.Token(ctx)
	if err != nil {
		vm.apply(ctx, OpRecipeMy, err, nil)
		return
	}
	result, err := vm.client.My(ctx, token)
	vm.apply(ctx, OpRecipeMy, err, func() { vm.myRecipes = result })
}

// Filter queries recipes by tools, meal time and ingredients. The result
// replaces the public listing.
func (vm *RecipeViewModel) Filter(ctx context.Context, tools []string, mealTime *string, ingredients []string) {
	vm.setLoading(OpRecipeFilter)
	token, _ := vm.auth.Token(ctx)
	result, err := vm.client.Filter(ctx, token, tools, mealTime, ingredients)
	vm.apply(ctx, OpRecipeFilter, err, func() { vm.recipes = result })
}

// Suggest fetches search suggestions for query.
func (vm *RecipeViewModel) Suggest(ctx context.Context, query string) {
	vm.setLoading(OpRecipeSuggest)
	token, _ := vm.auth.Token(ctx)
	result, err := vm.client.Suggest(ctx, token, query)
	vm.apply(ctx, OpRecipeSuggest, err, func() { vm.suggestions = result })
}

// Load fetches one recipe by id into Selected.
func (vm *RecipeViewModel) Load(ctx context.Context, id string) {
	vm.setLoading(OpRecipeGet)
	result, err := vm.client.GetByID(ctx, id)
	vm.apply(ctx, OpRecipeGet, err, func() { vm.selected = &result })
}

// Create uploads a new recipe and, on success, appends it to the user's own
// recipes.
func (vm *RecipeViewModel) Create(ctx context.Context, in api.NewRecipe) {
	vm.setLoading(OpRecipeCreate)
	token, err := vm.auth.Token(ctx)
	if err != nil {
		vm.apply(ctx, OpRecipeCreate, err, nil)
		return
	}
	created, err := vm.client.Create(ctx, token, in)
	vm.apply(ctx, OpRecipeCreate, err, func() { vm.myRecipes = append(vm.myRecipes, created) })
}

// Delete removes one of the user's recipes. The in-memory list drops the
// recipe only after the server confirms the deletion.
func (vm *RecipeViewModel) Delete(ctx context.Context, id string) {
	vm.setLoading(OpRecipeDelete)
	token, err := vm.auth.Token(ctx)
	if err != nil {
		vm.apply(ctx, OpRecipeDelete, err, nil)
		return
	}
	err = vm.client.DeleteByID(ctx, token, id)
	vm.apply(ctx, OpRecipeDelete, err, func() {
		kept := vm.myRecipes[:0]
		for _, r := range vm.myRecipes {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		vm.myRecipes = kept
	})
}

// ToggleFavorite flips the local favorite state of recipe and refreshes the
// favorites snapshot. It works without a session and without a network.
func (vm *RecipeViewModel) ToggleFavorite(ctx context.Context, recipe *models.Recipe) {
	vm.setLoading(OpFavorites)
	_, err := vm.favorites.Toggle(ctx, recipe)
	if err != nil {
		vm.apply(ctx, OpFavorites, err, nil)
		return
	}
	list, err := vm.favorites.List(ctx)
	vm.apply(ctx, OpFavorites, err, func() { vm.favList = list })
}

// LoadFavorites refreshes the favorites snapshot from the local cache.
func (vm *RecipeViewModel) LoadFavorites(ctx context.Context) {
	vm.setLoading(OpFavorites)
	list, err := vm.favorites.List(ctx)
	vm.apply(ctx, OpFavorites, err, func() { vm.favList = list })
}
