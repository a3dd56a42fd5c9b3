// Package models defines the wire and cache types shared by the remote
// clients, the favorites cache, and the view-model layer.
package models

import (
	"net/url"
	"strings"
)

// Ingredient is one entry of a recipe's ordered ingredient list. Quantity is
// free-form text and may be absent.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity *string `json:"quantity,omitempty"`
}

// RecipeSuggestion is the lightweight search-suggestion shape returned by
// the suggest endpoint.
type RecipeSuggestion struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// Recipe mirrors the backend recipe document. ID is server-assigned and
// immutable; equality is by ID.
type Recipe struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Tools       []string     `json:"tools,omitempty"`
	MealTime    *string      `json:"mealTime,omitempty"`
	Servings    *int         `json:"servings,omitempty"`
	ImageURL    *string      `json:"image,omitempty"`
	VideoURL    *string      `json:"video,omitempty"`
	CreatedAt   *string      `json:"createdAt,omitempty"`
	UpdatedAt   *string      `json:"updatedAt,omitempty"`
}

// DisplayImageURL resolves the recipe image against the API origin. Absolute
// URLs are returned as-is; relative paths are joined onto base. Returns nil
// when the recipe has no image.
func (r *Recipe) DisplayImageURL(base string) *url.URL {
	if r.ImageURL == nil {
		return nil
	}
	img := strings.TrimSpace(*r.ImageURL)
	if img == "" {
		return nil
	}

	if strings.HasPrefix(img, "http") {
		u, err := url.Parse(img)
		if err != nil {
			return nil
		}
		return u
	}

	u, err := url.Parse(strings.TrimRight(base, "/") + "/" + strings.TrimLeft(img, "/"))
	if err != nil {
		return nil
	}
	return u
}
