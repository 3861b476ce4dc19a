package rdb

import (
	"context"
	"regexp"
	"testing"
	"time"

	"recipes/internal/domain/entity"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newRecipe(owner, name, category string, date time.Time) *entity.Recipe {
	return &entity.Recipe{
		Owner:       owner,
		Name:        name,
		Category:    category,
		Date:        date,
		Description: name + " description",
		Ingredients: []string{"water", "sugar"},
		Directions:  []string{"mix", "serve"},
	}
}

func seedRecipes(t *testing.T, repo repository.RecipeRepository, recipes ...*entity.Recipe) {
	t.Helper()
	for _, recipe := range recipes {
		require.NoError(t, repo.Create(context.Background(), recipe))
	}
}

func names(recipes []*entity.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, recipe.Name)
	}

	return out
}

func TestRecipeRepository_CreateAndFind(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	first := newRecipe("cook@test.com", "Fresh Mint Tea", "beverage", baseTime)
	second := newRecipe("cook@test.com", "Warming Ginger Tea", "beverage", baseTime)
	seedRecipes(t, repo, first, second)

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "cook@test.com", found.Owner)
	assert.Equal(t, "Fresh Mint Tea", found.Name)
	assert.Equal(t, []string{"water", "sugar"}, found.Ingredients)
	assert.Equal(t, []string{"mix", "serve"}, found.Directions)
	assert.True(t, baseTime.Equal(found.Date))
}

func TestRecipeRepository_FindByID_NotFound(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)

	_, err = repo.FindByIDForUpdate(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRecipeRepository_IDsAreNotReused(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	first := newRecipe("cook@test.com", "One", "misc", baseTime)
	seedRecipes(t, repo, first)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := newRecipe("cook@test.com", "Two", "misc", baseTime)
	seedRecipes(t, repo, second)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRecipeRepository_Update(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := newRecipe("cook@test.com", "Tea", "beverage", baseTime)
	seedRecipes(t, repo, recipe)

	later := baseTime.Add(time.Hour)
	recipe.Name = "Iced Tea"
	recipe.Category = "drinks"
	recipe.Description = "cold"
	recipe.Ingredients = []string{"tea", "ice"}
	recipe.Directions = []string{"brew", "chill", "pour"}
	recipe.Date = later
	require.NoError(t, repo.Update(ctx, recipe))

	found, err := repo.FindByIDForUpdate(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iced Tea", found.Name)
	assert.Equal(t, "drinks", found.Category)
	assert.Equal(t, "cold", found.Description)
	assert.Equal(t, []string{"tea", "ice"}, found.Ingredients)
	assert.Equal(t, []string{"brew", "chill", "pour"}, found.Directions)
	assert.True(t, later.Equal(found.Date))
	assert.Equal(t, "cook@test.com", found.Owner)
}

func TestRecipeRepository_UpdateKeepsOwner(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := newRecipe("cook@test.com", "Tea", "beverage", baseTime)
	seedRecipes(t, repo, recipe)

	recipe.Owner = "thief@test.com"
	require.NoError(t, repo.Update(ctx, recipe))

	found, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "cook@test.com", found.Owner)
}

func TestRecipeRepository_UpdateMissing(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	err := repo.Update(context.Background(), newRecipe("cook@test.com", "Ghost", "misc", baseTime))
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRecipeRepository_Delete(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := newRecipe("cook@test.com", "Tea", "beverage", baseTime)
	seedRecipes(t, repo, recipe)

	require.NoError(t, repo.Delete(ctx, recipe.ID))

	_, err := repo.FindByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, recipe.ID), repository.ErrRecipeNotFound)
}

func TestRecipeRepository_FindByCategory(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	seedRecipes(t, repo,
		newRecipe("a@test.com", "Mint Tea", "beverage", baseTime),
		newRecipe("a@test.com", "Lemonade", "Beverage", baseTime.Add(2*time.Hour)),
		newRecipe("b@test.com", "Pancakes", "breakfast", baseTime.Add(time.Hour)),
		newRecipe("b@test.com", "Coffee", "BEVERAGE", baseTime.Add(time.Hour)),
		newRecipe("b@test.com", "Bubble", "beverages", baseTime.Add(3*time.Hour)),
	)

	found, err := repo.FindByCategory(ctx, "beVerAge")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lemonade", "Coffee", "Mint Tea"}, names(found))

	empty, err := repo.FindByCategory(ctx, "dessert")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRecipeRepository_FindByNameContaining(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	seedRecipes(t, repo,
		newRecipe("a@test.com", "Fresh Mint Tea", "beverage", baseTime),
		newRecipe("a@test.com", "Warming Ginger TEA", "beverage", baseTime.Add(time.Hour)),
		newRecipe("a@test.com", "Steak", "dinner", baseTime.Add(2*time.Hour)),
		newRecipe("a@test.com", "100% Juice", "beverage", baseTime.Add(3*time.Hour)),
	)

	found, err := repo.FindByNameContaining(ctx, "tea")
	require.NoError(t, err)
	assert.Equal(t, []string{"Warming Ginger TEA", "Fresh Mint Tea"}, names(found))

	found, err = repo.FindByNameContaining(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Juice"}, names(found), "wildcards match literally")

	found, err = repo.FindByNameContaining(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.FindByNameContaining(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 4)
}

func TestRecipeRepository_SearchFoldsNonASCII(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	seedRecipes(t, repo,
		newRecipe("a@test.com", "Crème brûlée", "Café", baseTime),
		newRecipe("a@test.com", "Ωmega Salad", "ΣАЛАТ", baseTime.Add(time.Hour)),
	)

	found, err := repo.FindByCategory(ctx, "CAFÉ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Crème brûlée"}, names(found))

	found, err = repo.FindByNameContaining(ctx, "CRÈME")
	require.NoError(t, err)
	assert.Equal(t, []string{"Crème brûlée"}, names(found))

	found, err = repo.FindByCategory(ctx, "σалат")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ωmega Salad"}, names(found))

	found, err = repo.FindByNameContaining(ctx, "ωMEGA")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ωmega Salad"}, names(found))
}

func TestRecipeRepository_UpdateRefreshesSearchKeys(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := newRecipe("a@test.com", "Mint Tea", "beverage", baseTime)
	seedRecipes(t, repo, recipe)

	recipe.Name = "Éclair"
	recipe.Category = "Dessert"
	require.NoError(t, repo.Update(ctx, recipe))

	found, err := repo.FindByCategory(ctx, "beverage")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.FindByCategory(ctx, "DESSERT")
	require.NoError(t, err)
	assert.Equal(t, []string{"Éclair"}, names(found))

	found, err = repo.FindByNameContaining(ctx, "éCL")
	require.NoError(t, err)
	assert.Equal(t, []string{"Éclair"}, names(found))
}

func TestRecipeRepository_SameDateOrdersByNewestID(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	seedRecipes(t, repo,
		newRecipe("a@test.com", "first", "misc", baseTime),
		newRecipe("a@test.com", "second", "misc", baseTime),
	)

	found, err := repo.FindByCategory(context.Background(), "misc")
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, names(found))
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newStatementLogger(newDiscardLogger(), nil),
	})
	require.NoError(t, err)

	return db, mock
}

func TestRecipeRepository_Postgres_LocksRowForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByIDForUpdate(context.Background(), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrRecipeNotFound)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Postgres_DeleteFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipes" WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnError(errors.New("disk full"))

	err := repo.Delete(context.Background(), 5)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Postgres_SearchFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "recipes" WHERE category_key = $1 ORDER BY date DESC,id DESC`)).
		WithArgs("beverage").
		WillReturnError(errors.New("timeout"))

	_, err := repo.FindByCategory(context.Background(), "BeVerage")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
