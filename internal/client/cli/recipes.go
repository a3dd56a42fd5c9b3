package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mbopage/ezycook-cli/internal/client/api"
	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/client/services"
)

func (a *App) printRecipeLine(r *models.Recipe) {
	printlnFn(fmt.Sprintf("%s  %s", r.ID, r.Title))
}

func (a *App) printRecipe(r *models.Recipe) {
	printlnFn("Title:", r.Title)
	printlnFn("Description:", r.Description)
	if r.MealTime != nil {
		printlnFn("Meal time:", *r.MealTime)
	}
	if r.Servings != nil {
		printlnFn("Servings:", *r.Servings)
	}
	if len(r.Ingredients) > 0 {
		printlnFn("Ingredients:")
		for _, ing := range r.Ingredients {
			if ing.Quantity != nil {
				printlnFn(fmt.Sprintf("  - %s (%s)", ing.Name, *ing.Quantity))
			} else {
				printlnFn("  -", ing.Name)
			}
		}
	}
	if len(r.Tools) > 0 {
		printlnFn("Tools:", strings.Join(r.Tools, ", "))
	}
	if u := r.DisplayImageURL(a.config.BaseURL); u != nil {
		printlnFn("Image:", u.String())
	}
	if r.VideoURL != nil {
		printlnFn("Video:", *r.VideoURL)
	}
}

// List fetches and prints the public recipe collection.
func (a *App) List(ctx context.Context) error {
	a.recipes.LoadAll(ctx)

	if status := a.recipes.Status(services.OpRecipeList); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	for i := range a.recipes.Recipes() {
		a.printRecipeLine(&a.recipes.Recipes()[i])
	}
	return nil
}

// My lists the user's own recipes.
func (a *App) My(ctx context.Context) error {
	a.recipes.LoadMy(ctx)

	if status := a.recipes.Status(services.OpRecipeMy); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	for i := range a.recipes.MyRecipes() {
		a.printRecipeLine(&a.recipes.MyRecipes()[i])
	}
	return nil
}

// Filter prompts for tools, meal time and ingredients and prints the matching
// recipes.
func (a *App) Filter(ctx context.Context) error {
	tools, err := GetList(a.reader, "Tools (comma separated, empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	mealTimeText, err := getSimpleText(a.reader, "Meal time (empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	ingredients, err := GetList(a.reader, "Ingredients (comma separated, empty for any)", os.Stdout)
	if err != nil {
		return err
	}

	var mealTime *string
	if mealTimeText != "" {
		mealTime = &mealTimeText
	}

	a.recipes.Filter(ctx, tools, mealTime, ingredients)

	if status := a.recipes.Status(services.OpRecipeFilter); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	for i := range a.recipes.Recipes() {
		a.printRecipeLine(&a.recipes.Recipes()[i])
	}
	return nil
}

// Suggest prints search suggestions for a query.
func (a *App) Suggest(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	a.recipes.Suggest(ctx, query)

	if status := a.recipes.Status(services.OpRecipeSuggest); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	for _, s := range a.recipes.Suggestions() {
		printlnFn(fmt.Sprintf("%s  %s", s.ID, s.Title))
	}
	return nil
}

// Show fetches and prints one recipe.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	a.recipes.Load(ctx, id)

	if status := a.recipes.Status(services.OpRecipeGet); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	a.printRecipe(a.recipes.Selected())
	return nil
}

// Add prompts for recipe fields and uploads a new recipe. Ingredients are
// entered as "name=quantity" pairs; the image is read from a local file path.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	servingsText, err := getSimpleText(a.reader, "Servings", os.Stdout)
	if err != nil {
		return err
	}
	servings, err := strconv.Atoi(servingsText)
	if err != nil {
		printlnFn("Servings must be a number")
		return nil
	}
	mealTimeText, err := getSimpleText(a.reader, "Meal time (optional)", os.Stdout)
	if err != nil {
		return err
	}
	items, err := GetList(a.reader, "Ingredients (comma separated, name=quantity)", os.Stdout)
	if err != nil {
		return err
	}
	tools, err := GetList(a.reader, "Tools (comma separated, optional)", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Image file path (optional)", os.Stdout)
	if err != nil {
		return err
	}

	in := api.NewRecipe{
		Title:       title,
		Description: description,
		Servings:    servings,
		Tools:       tools,
	}
	if mealTimeText != "" {
		in.MealTime = &mealTimeText
	}
	for _, item := range items {
		name, quantity, found := strings.Cut(item, "=")
		ing := models.Ingredient{Name: strings.TrimSpace(name)}
		if found {
			q := strings.TrimSpace(quantity)
			ing.Quantity = &q
		}
		in.Ingredients = append(in.Ingredients, ing)
	}
	if imagePath != "" {
		image, err := os.ReadFile(imagePath)
		if err != nil {
			printlnFn("Cannot read image:", err.Error())
			return nil
		}
		in.Image = image
	}

	a.recipes.Create(ctx, in)

	if status := a.recipes.Status(services.OpRecipeCreate); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	printlnFn("Recipe created")
	return nil
}

// Delete removes one of the user's recipes by id.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter recipe id to delete", os.Stdout)
	if err != nil {
		return err
	}

	a.recipes.Delete(ctx, id)

	if status := a.recipes.Status(services.OpRecipeDelete); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	printlnFn("Recipe deleted")
	return nil
}
