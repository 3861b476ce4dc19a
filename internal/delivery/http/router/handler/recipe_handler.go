// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	deliverycontext "recipes/internal/delivery/context"
	"recipes/internal/delivery/http/validator"
	"recipes/internal/domain/entity"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler holds dependencies for recipe endpoints.
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler.
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// RecipeRequest is the body accepted by create and update.
// Client-supplied id and date are not part of it and are ignored.
type RecipeRequest struct {
	Name        string   `json:"name" validate:"notblank"`
	Category    string   `json:"category" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,notblank"`
	Directions  []string `json:"directions" validate:"required,min=1,dive,notblank"`
}

// RecipeResponse is the public projection of a recipe. Id and owner are never exposed.
type RecipeResponse struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Directions  []string  `json:"directions"`
}

// CreateRecipeResponse carries the id assigned to a new recipe.
type CreateRecipeResponse struct {
	ID int64 `json:"id"`
}

// CreateRecipe handles POST /api/recipe/new.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	input, err := bindRecipe(c)
	if err != nil {
		return err
	}
	if err := validateRecipe(c, input); err != nil {
		return err
	}

	output, err := h.recipeUC.CreateRecipe(c.Request().Context(), caller, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, CreateRecipeResponse{ID: output.ID})
}

// GetRecipe handles GET /api/recipe/:id.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipeUC.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// UpdateRecipe handles PUT /api/recipe/:id.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := parseRecipeID(c)
	if err != nil {
		return err
	}

	// Content is validated by the use case after the ownership check.
	input, err := bindRecipe(c)
	if err != nil {
		return err
	}

	if err := h.recipeUC.UpdateRecipe(c.Request().Context(), caller, id, input.toInput()); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteRecipe handles DELETE /api/recipe/:id.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := parseRecipeID(c)
	if err != nil {
		return err
	}

	if err := h.recipeUC.DeleteRecipe(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SearchRecipes handles GET /api/recipe/search?category=... or ?name=...
func (h *RecipeHandler) SearchRecipes(c echo.Context) error {
	query := c.QueryParams()
	input := &usecase.SearchRecipesInput{}
	if query.Has("category") {
		category := query.Get("category")
		input.Category = &category
	}
	if query.Has("name") {
		name := query.Get("name")
		input.Name = &name
	}

	recipes, err := h.recipeUC.SearchRecipes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, toRecipeResponse(recipe))
	}

	return c.JSON(http.StatusOK, out)
}

func parseRecipeID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidRecipeID
	}

	return id, nil
}

func bindRecipe(c echo.Context) (*RecipeRequest, error) {
	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return &req, nil
}

func validateRecipe(c echo.Context, req *RecipeRequest) error {
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(validator.FieldErrors(err), "; "))
	}

	return nil
}

func (req *RecipeRequest) toInput() *usecase.RecipeInput {
	return &usecase.RecipeInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Directions:  req.Directions,
	}
}

func toRecipeResponse(recipe *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		Name:        recipe.Name,
		Category:    recipe.Category,
		Date:        recipe.Date.UTC(),
		Description: recipe.Description,
		Ingredients: recipe.Ingredients,
		Directions:  recipe.Directions,
	}
}
