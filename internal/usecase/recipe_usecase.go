// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"recipes/internal/domain/entity"
)

// --- Input DTOs ---

// RecipeInput carries the client-editable recipe fields for creation and update.
type RecipeInput struct {
	Name        string
	Category    string
	Description string
	Ingredients []string
	Directions  []string
}

// Content converts the input into the domain value that owns the validation rules.
func (in *RecipeInput) Content() entity.RecipeContent {
	if in == nil {
		return entity.RecipeContent{}
	}

	return entity.RecipeContent{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Ingredients: in.Ingredients,
		Directions:  in.Directions,
	}
}

// SearchRecipesInput selects one search path. A non-nil field means the query
// parameter was present, even if its value is empty.
type SearchRecipesInput struct {
	Category *string
	Name     *string
}

// --- Output DTOs ---

// CreateRecipeOutput returns the id assigned to a new recipe.
type CreateRecipeOutput struct {
	ID int64
}

// RecipeUsecase defines recipe management operations.
// Caller identity is always passed explicitly by the delivery layer.
type RecipeUsecase interface {
	CreateRecipe(ctx context.Context, owner string, input *RecipeInput) (*CreateRecipeOutput, error)
	GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error)
	UpdateRecipe(ctx context.Context, caller string, id int64, input *RecipeInput) error
	DeleteRecipe(ctx context.Context, caller string, id int64) error
	SearchRecipes(ctx context.Context, input *SearchRecipesInput) ([]*entity.Recipe, error)
}
