// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "recipes/internal/delivery/context"
	"recipes/internal/domain/entity"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/domain/repository"
	"recipes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
	now        func() time.Time
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateRecipe validates the content and stores it owned by owner.
func (srv *recipeService) CreateRecipe(ctx context.Context, owner string, input *usecase.RecipeInput) (*usecase.CreateRecipeOutput, error) {
	if owner == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	content := input.Content()
	if err := validateContent(content); err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{Owner: owner}
	content.ApplyTo(recipe, srv.now().UTC())

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to create recipe", slog.String("owner", owner), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Debug("Recipe created", slog.Int64("recipeID", recipe.ID), slog.String("owner", owner))

	return &usecase.CreateRecipeOutput{ID: recipe.ID}, nil
}

// GetRecipe returns a recipe by id. No authorization applies.
func (srv *recipeService) GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRecipeLookupError(err)
	}

	return recipe, nil
}

// UpdateRecipe replaces every editable field and refreshes the date.
// Existence and ownership are checked before the content, so a stranger
// gets Forbidden whatever the payload.
func (srv *recipeService) UpdateRecipe(ctx context.Context, caller string, id int64, input *usecase.RecipeInput) error {
	if caller == "" {
		return domainerrors.ErrUnauthenticated
	}

	content := input.Content()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.NewRecipeRepository()

		recipe, err := srv.lockOwnedRecipe(ctx, recipeRepo, caller, id)
		if err != nil {
			return err
		}
		if err := validateContent(content); err != nil {
			return err
		}

		content.ApplyTo(recipe, srv.now().UTC())

		return recipeRepo.Update(ctx, recipe)
	})
	if err != nil {
		return srv.mutationError(ctx, "update", caller, id, err)
	}

	srv.log(ctx).Debug("Recipe updated", slog.Int64("recipeID", id))

	return nil
}

// DeleteRecipe permanently removes a recipe owned by caller.
func (srv *recipeService) DeleteRecipe(ctx context.Context, caller string, id int64) error {
	if caller == "" {
		return domainerrors.ErrUnauthenticated
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.NewRecipeRepository()

		if _, err := srv.lockOwnedRecipe(ctx, recipeRepo, caller, id); err != nil {
			return err
		}

		return recipeRepo.Delete(ctx, id)
	})
	if err != nil {
		return srv.mutationError(ctx, "delete", caller, id, err)
	}

	srv.log(ctx).Debug("Recipe deleted", slog.Int64("recipeID", id))

	return nil
}

// SearchRecipes runs exactly one of the two search paths, newest first.
func (srv *recipeService) SearchRecipes(ctx context.Context, input *usecase.SearchRecipesInput) ([]*entity.Recipe, error) {
	if input == nil || (input.Category == nil) == (input.Name == nil) {
		return nil, domainerrors.ErrInvalidSearchQuery
	}

	var (
		recipes []*entity.Recipe
		err     error
	)
	if input.Category != nil {
		recipes, err = srv.recipeRepo.FindByCategory(ctx, *input.Category)
	} else {
		recipes, err = srv.recipeRepo.FindByNameContaining(ctx, *input.Name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}
	if recipes == nil {
		recipes = []*entity.Recipe{}
	}

	return recipes, nil
}

// lockOwnedRecipe loads the recipe under a row lock and checks that caller owns it.
func (srv *recipeService) lockOwnedRecipe(ctx context.Context, recipeRepo repository.RecipeRepository, caller string, id int64) (*entity.Recipe, error) {
	recipe, err := recipeRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapRecipeLookupError(err)
	}

	if recipe.Owner != caller {
		srv.log(ctx).Warn("Recipe ownership violation", slog.Int64("recipeID", id), slog.String("caller", caller))

		return nil, domainerrors.ErrRecipeOwnershipViolation
	}

	return recipe, nil
}

func (srv *recipeService) mutationError(ctx context.Context, action, caller string, id int64, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return err
	}
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return domainerrors.ErrRecipeNotFound
	}

	srv.log(ctx).Error("Failed to "+action+" recipe",
		slog.Int64("recipeID", id),
		slog.String("caller", caller),
		slog.Any("error", err),
	)

	return errors.Wrapf(err, "failed to %s recipe", action)
}

func validateContent(content entity.RecipeContent) error {
	if err := content.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func mapRecipeLookupError(err error) error {
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return domainerrors.ErrRecipeNotFound
	}

	return errors.Wrap(err, "failed to find recipe")
}
