// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recipes/internal/domain/entity"
)

// ErrRecipeNotFound is returned when no recipe has the requested id.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the persistence operations for recipes.
type RecipeRepository interface {
	// Create persists a new recipe and sets its ID.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a recipe by id.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// FindByIDForUpdate retrieves a recipe and locks its row until the surrounding transaction ends.
	// Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Recipe, error)

	// Update overwrites every column of an existing recipe.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe permanently.
	Delete(ctx context.Context, id int64) error

	// FindByCategory returns recipes whose category equals the argument ignoring case,
	// newest first.
	FindByCategory(ctx context.Context, category string) ([]*entity.Recipe, error)

	// FindByNameContaining returns recipes whose name contains the argument ignoring case,
	// newest first.
	FindByNameContaining(ctx context.Context, fragment string) ([]*entity.Recipe, error)
}
