package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mbopage/ezycook-cli/internal/client/imgx"
	"github.com/mbopage/ezycook-cli/internal/client/models"
)

// RecipeClient is the typed façade over the recipe endpoints. Operations map
// 1:1 onto backend paths; the only client-side shaping is image
// resize/compression and JSON-encoding nested lists into multipart text
// fields.
type RecipeClient struct {
	gw *Gateway
}

func NewRecipeClient(gw *Gateway) *RecipeClient {
	return &RecipeClient{gw: gw}
}

// NewRecipe carries the inputs for Create. MealTime and Image are optional.
type NewRecipe struct {
	Title       string
	Description string
	Ingredients []models.Ingredient
	Tools       []string
	MealTime    *string
	Servings    int

	// Image is the raw picked image; it is resized to at most
	// imgx.MaxUploadWidth pixels wide and re-encoded as JPEG before upload.
	Image []byte
}

// Create uploads a new recipe as multipart/form-data to the authenticated
// my-recipes collection.
func (c *RecipeClient) Create(ctx context.Context, token string, in NewRecipe) (models.Recipe, error) {
	form := NewMultipartForm()
	form.AddField("title", in.Title)
	form.AddField("description", in.Description)
	form.AddField("servings", strconv.Itoa(in.Servings))
	if in.MealTime != nil && *in.MealTime != "" {
		form.AddField("mealTime", *in.MealTime)
	}

	ingredients, err := json.Marshal(in.Ingredients)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("encode ingredients: %w", err)
	}
	form.AddField("ingredients", string(ingredients))

	if len(in.Tools) > 0 {
		tools, err := json.Marshal(in.Tools)
		if err != nil {
			return models.Recipe{}, fmt.Errorf("encode tools: %w", err)
		}
		form.AddField("tools", string(tools))
	}

	if len(in.Image) > 0 {
		jpg, err := imgx.PrepareJPEG(in.Image, imgx.MaxUploadWidth)
		if err != nil {
			return models.Recipe{}, fmt.Errorf("prepare image: %w", err)
		}
		form.SetFile("image", "recipe.jpg", "image/jpeg", jpg)
	}

	return Do[models.Recipe](ctx, c.gw, Request{
		Method:        http.MethodPost,
		Path:          "/api/recipes/my-recipes",
		Form:          form,
		Token:         token,
		Authenticated: true,
	})
}

// My lists the authenticated user's own recipes.
func (c *RecipeClient) My(ctx context.Context, token string) ([]models.Recipe, error) {
	return Do[[]models.Recipe](ctx, c.gw, Request{
		Method:        http.MethodGet,
		Path:          "/api/recipes/my-recipes",
		Token:         token,
		Authenticated: true,
	})
}

type filterRequest struct {
	Tools       []string `json:"tools"`
	MealTime    string   `json:"mealTime"`
	Ingredients []string `json:"ingredients"`
}

// Filter queries recipes by tools, meal time and ingredients. A nil mealTime
// is sent as an empty string, and nil slices as empty arrays, matching the
// backend contract exactly.
func (c *RecipeClient) Filter(ctx context.Context, token string, tools []string, mealTime *string, ingredients []string) ([]models.Recipe, error) {
	body := filterRequest{
		Tools:       tools,
		MealTime:    "",
		Ingredients: ingredients,
	}
	if body.Tools == nil {
		body.Tools = []string{}
	}
	if body.Ingredients == nil {
		body.Ingredients = []string{}
	}
	if mealTime != nil {
		body.MealTime = *mealTime
	}

	return Do[[]models.Recipe](ctx, c.gw, Request{
		Method: http.MethodPost,
		Path:   "/api/recipes/filter",
		Body:   body,
		Token:  token,
	})
}

// Suggest returns lightweight {id,title} suggestions for a search box query.
func (c *RecipeClient) Suggest(ctx context.Context, token string, query string) ([]models.RecipeSuggestion, error) {
	q := url.Values{}
	q.Set("query", query)

	return Do[[]models.RecipeSuggestion](ctx, c.gw, Request{
		Method: http.MethodGet,
		Path:   "/api/recipes/suggest/search",
		Query:  q,
		Token:  token,
	})
}

// GetByID fetches a single recipe.
func (c *RecipeClient) GetByID(ctx context.Context, id string) (models.Recipe, error) {
	return Do[models.Recipe](ctx, c.gw, Request{
		Method: http.MethodGet,
		Path:   "/api/recipes/" + url.PathEscape(id),
	})
}

// All lists the public recipe collection. No authentication required.
func (c *RecipeClient) All(ctx context.Context) ([]models.Recipe, error) {
	return Do[[]models.Recipe](ctx, c.gw, Request{
		Method: http.MethodGet,
		Path:   "/api/recipes",
	})
}

// DeleteByID removes one of the authenticated user's recipes.
func (c *RecipeClient) DeleteByID(ctx context.Context, token, id string) error {
	_, err := Do[models.MessageResponse](ctx, c.gw, Request{
		Method:        http.MethodDelete,
		Path:          "/api/recipes/my-recipes/" + url.PathEscape(id),
		Token:         token,
		Authenticated: true,
	})
	return err
}
