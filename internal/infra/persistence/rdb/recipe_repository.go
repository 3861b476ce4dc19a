package rdb

import (
	"context"
	"strings"

	"recipes/internal/domain/entity"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/domain/repository"
	"recipes/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns rewritten by Update. id and owner are immutable.
var recipeMutableColumns = []string{"name", "name_key", "category", "category_key", "date", "description", "ingredients", "directions"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// Create persists a new recipe and writes the generated id back to the entity.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)
	recipeM.ID = 0

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID

	return nil
}

// FindByID retrieves a recipe by its id.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a recipe with SELECT ... FOR UPDATE.
// SQLite has no row locks and serializes writers on its own, so the clause is skipped there.
func (repo *recipeRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Recipe, error) {
	query := repo.db.WithContext(ctx)
	if repo.db.Dialector.Name() == dialectPostgres {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return repo.findByID(query, id)
}

func (repo *recipeRepository) findByID(query *gorm.DB, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := query.Where("id = ?", id).First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	return toRecipeDomain(&recipeM), nil
}

// Update overwrites the mutable columns of an existing recipe.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Select(recipeMutableColumns).
		Updates(recipeM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes a recipe permanently.
func (repo *recipeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecipeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// FindByCategory returns recipes in the category, compared case-insensitively, newest first.
func (repo *recipeRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.newestFirst(repo.db.WithContext(ctx)).
		Where("category_key = ?", searchKey(category)).
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by category")
	}

	return toRecipeDomains(recipeModels), nil
}

// FindByNameContaining returns recipes whose name contains fragment, case-insensitively, newest first.
// LIKE wildcards in fragment match literally.
func (repo *recipeRepository) FindByNameContaining(ctx context.Context, fragment string) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	pattern := "%" + likeEscaper.Replace(searchKey(fragment)) + "%"
	if err := repo.newestFirst(repo.db.WithContext(ctx)).
		Where(`name_key LIKE ? ESCAPE '\'`, pattern).
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by name")
	}

	return toRecipeDomains(recipeModels), nil
}

func (repo *recipeRepository) newestFirst(query *gorm.DB) *gorm.DB {
	return query.Order("date DESC").Order("id DESC")
}

// searchKey is the stored form of name and category used for case-insensitive lookups.
// SQLite's LOWER only folds ASCII, so keys are folded here.
func searchKey(value string) string {
	return strings.ToLower(value)
}

func toRecipeDomains(recipeModels []*model.RecipeModel) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes
}

func toRecipeDomain(recipeM *model.RecipeModel) *entity.Recipe {
	if recipeM == nil {
		return nil
	}

	return &entity.Recipe{
		ID:          recipeM.ID,
		Owner:       recipeM.Owner,
		Name:        recipeM.Name,
		Category:    recipeM.Category,
		Date:        recipeM.Date.UTC(),
		Description: recipeM.Description,
		Ingredients: recipeM.Ingredients,
		Directions:  recipeM.Directions,
	}
}

func fromRecipeDomain(recipe *entity.Recipe) *model.RecipeModel {
	if recipe == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:          recipe.ID,
		Owner:       recipe.Owner,
		Name:        recipe.Name,
		NameKey:     searchKey(recipe.Name),
		Category:    recipe.Category,
		CategoryKey: searchKey(recipe.Category),
		Date:        recipe.Date.UTC(),
		Description: recipe.Description,
		Ingredients: recipe.Ingredients,
		Directions:  recipe.Directions,
	}
}
