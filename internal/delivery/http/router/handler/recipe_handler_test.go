package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"recipes/internal/delivery/http/response"
	"recipes/internal/domain/entity"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/domain/service"
	"recipes/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const teaBody = `{
	"name": "Fresh Mint Tea",
	"category": "beverage",
	"description": "Light, aromatic and refreshing beverage, ...",
	"ingredients": ["boiled water", "honey", "fresh mint leaves"],
	"directions": ["Boil water", "Pour boiling hot water into a mug", "Add fresh mint leaves", "Mix and let the mint leaves seep for 3-5 minutes", "Add honey and mix again"]
}`

func decodeError(t *testing.T, body []byte) response.ErrorResponse {
	t.Helper()

	var out response.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotNil(t, out.Error)

	return out
}

func TestRecipeHandler_CreateRecipe_BasicAuth(t *testing.T) {
	srv := newTestServer(t)

	srv.accounts.EXPECT().
		Authenticate(mock.Anything, "alice@example.com", "secret123").
		Return("alice@example.com", nil)
	srv.recipes.EXPECT().
		CreateRecipe(mock.Anything, "alice@example.com", mock.MatchedBy(func(in *usecase.RecipeInput) bool {
			return in.Name == "Fresh Mint Tea" && in.Category == "beverage" && len(in.Ingredients) == 3 && len(in.Directions) == 5
		})).
		Return(&usecase.CreateRecipeOutput{ID: 1}, nil)

	rec := srv.do(http.MethodPost, "/api/recipe/new", teaBody, basicAuth("alice@example.com", "secret123"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRecipeHandler_CreateRecipe_BearerToken(t *testing.T) {
	srv := newTestServer(t)

	srv.tokens.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{Subject: "bob@example.com"}}, nil)
	srv.recipes.EXPECT().
		CreateRecipe(mock.Anything, "bob@example.com", mock.Anything).
		Return(&usecase.CreateRecipeOutput{ID: 7}, nil)

	rec := srv.do(http.MethodPost, "/api/recipe/new", teaBody, bearerAuth("good-token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestRecipeHandler_CreateRecipe_Unauthenticated(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		setup  func(srv *testServer)
	}{
		{
			name:   "missing header",
			header: nil,
		},
		{
			name:   "unknown scheme",
			header: http.Header{"Authorization": []string{"Digest abc"}},
		},
		{
			name:   "wrong password",
			header: basicAuth("alice@example.com", "wrong-pass"),
			setup: func(srv *testServer) {
				srv.accounts.EXPECT().
					Authenticate(mock.Anything, "alice@example.com", "wrong-pass").
					Return("", domainerrors.ErrInvalidCredentials)
			},
		},
		{
			name:   "invalid bearer token",
			header: bearerAuth("expired"),
			setup: func(srv *testServer) {
				srv.tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.setup != nil {
				tt.setup(srv)
			}

			rec := srv.do(http.MethodPost, "/api/recipe/new", teaBody, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, `Basic realm="recipes"`, rec.Header().Get("WWW-Authenticate"))
			out := decodeError(t, rec.Body.Bytes())
			assert.Nil(t, out.Error.Details)
			assert.NotEmpty(t, out.Meta.RequestID)
		})
	}
}

func TestRecipeHandler_CreateRecipe_ValidationFailed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "blank name", body: `{"name":"  ","category":"c","description":"d","ingredients":["a"],"directions":["b"]}`},
		{name: "missing ingredients", body: `{"name":"n","category":"c","description":"d","directions":["b"]}`},
		{name: "empty directions", body: `{"name":"n","category":"c","description":"d","ingredients":["a"],"directions":[]}`},
		{name: "blank list element", body: `{"name":"n","category":"c","description":"d","ingredients":["a",""],"directions":["b"]}`},
		{name: "malformed json", body: `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.accounts.EXPECT().
				Authenticate(mock.Anything, "alice@example.com", "secret123").
				Return("alice@example.com", nil)

			rec := srv.do(http.MethodPost, "/api/recipe/new", tt.body, basicAuth("alice@example.com", "secret123"))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			out := decodeError(t, rec.Body.Bytes())
			assert.Equal(t, "VALIDATION_FAILED", out.Error.Code)
			assert.NotNil(t, out.Error.Details)
		})
	}
}

func TestRecipeHandler_GetRecipe(t *testing.T) {
	srv := newTestServer(t)

	srv.recipes.EXPECT().GetRecipe(mock.Anything, int64(1)).Return(&entity.Recipe{
		ID:          1,
		Owner:       "alice@example.com",
		Name:        "Fresh Mint Tea",
		Category:    "beverage",
		Date:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Description: "Light",
		Ingredients: []string{"water"},
		Directions:  []string{"boil"},
	}, nil)

	rec := srv.do(http.MethodGet, "/api/recipe/1", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"name": "Fresh Mint Tea",
		"category": "beverage",
		"date": "2024-05-01T10:00:00Z",
		"description": "Light",
		"ingredients": ["water"],
		"directions": ["boil"]
	}`, rec.Body.String())
}

func TestRecipeHandler_GetRecipe_Errors(t *testing.T) {
	t.Run("non numeric id", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(http.MethodGet, "/api/recipe/abc", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_RECIPE_ID", decodeError(t, rec.Body.Bytes()).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		srv := newTestServer(t)
		srv.recipes.EXPECT().GetRecipe(mock.Anything, int64(99)).Return(nil, domainerrors.ErrRecipeNotFound)

		rec := srv.do(http.MethodGet, "/api/recipe/99", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "RECIPE_NOT_FOUND", decodeError(t, rec.Body.Bytes()).Error.Code)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		srv := newTestServer(t)
		srv.recipes.EXPECT().GetRecipe(mock.Anything, int64(5)).Return(nil, errors.New("connection reset"))

		rec := srv.do(http.MethodGet, "/api/recipe/5", "", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		out := decodeError(t, rec.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", out.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestRecipeHandler_UpdateRecipe(t *testing.T) {
	t.Run("owner updates", func(t *testing.T) {
		srv := newTestServer(t)
		srv.accounts.EXPECT().Authenticate(mock.Anything, "alice@example.com", "secret123").Return("alice@example.com", nil)
		srv.recipes.EXPECT().UpdateRecipe(mock.Anything, "alice@example.com", int64(1), mock.Anything).Return(nil)

		rec := srv.do(http.MethodPut, "/api/recipe/1", teaBody, basicAuth("alice@example.com", "secret123"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("non owner is forbidden", func(t *testing.T) {
		srv := newTestServer(t)
		srv.accounts.EXPECT().Authenticate(mock.Anything, "bob@example.com", "secret123").Return("bob@example.com", nil)
		srv.recipes.EXPECT().
			UpdateRecipe(mock.Anything, "bob@example.com", int64(1), mock.Anything).
			Return(domainerrors.ErrRecipeOwnershipViolation)

		rec := srv.do(http.MethodPut, "/api/recipe/1", teaBody, basicAuth("bob@example.com", "secret123"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "RECIPE_OWNERSHIP_VIOLATION", decodeError(t, rec.Body.Bytes()).Error.Code)
	})

	t.Run("non owner with invalid body is still forbidden", func(t *testing.T) {
		srv := newTestServer(t)
		srv.accounts.EXPECT().Authenticate(mock.Anything, "bob@example.com", "secret123").Return("bob@example.com", nil)
		srv.recipes.EXPECT().
			UpdateRecipe(mock.Anything, "bob@example.com", int64(1), mock.MatchedBy(func(in *usecase.RecipeInput) bool {
				return in.Name == "   " && len(in.Ingredients) == 0
			})).
			Return(domainerrors.ErrRecipeOwnershipViolation)

		body := `{"name":"   ","category":"beverage","description":"d","ingredients":[],"directions":["steep"]}`
		rec := srv.do(http.MethodPut, "/api/recipe/1", body, basicAuth("bob@example.com", "secret123"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated never reaches the use case", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(http.MethodPut, "/api/recipe/1", teaBody, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRecipeHandler_DeleteRecipe(t *testing.T) {
	srv := newTestServer(t)
	srv.accounts.EXPECT().Authenticate(mock.Anything, "alice@example.com", "secret123").Return("alice@example.com", nil).Twice()
	srv.recipes.EXPECT().DeleteRecipe(mock.Anything, "alice@example.com", int64(3)).Return(nil).Once()
	srv.recipes.EXPECT().DeleteRecipe(mock.Anything, "alice@example.com", int64(3)).Return(domainerrors.ErrRecipeNotFound).Once()

	rec := srv.do(http.MethodDelete, "/api/recipe/3", "", basicAuth("alice@example.com", "secret123"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(http.MethodDelete, "/api/recipe/3", "", basicAuth("alice@example.com", "secret123"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecipeHandler_SearchRecipes(t *testing.T) {
	recipes := []*entity.Recipe{
		{ID: 2, Name: "Warming Ginger Tea", Category: "beverage", Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Description: "d", Ingredients: []string{"ginger"}, Directions: []string{"steep"}},
		{ID: 1, Name: "Fresh Mint Tea", Category: "beverage", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Description: "d", Ingredients: []string{"mint"}, Directions: []string{"steep"}},
	}

	t.Run("by category", func(t *testing.T) {
		srv := newTestServer(t)
		srv.recipes.EXPECT().
			SearchRecipes(mock.Anything, mock.MatchedBy(func(in *usecase.SearchRecipesInput) bool {
				return in.Category != nil && *in.Category == "Beverage" && in.Name == nil
			})).
			Return(recipes, nil)

		rec := srv.do(http.MethodGet, "/api/recipe/search?category=Beverage", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 2)
		assert.Equal(t, "Warming Ginger Tea", out[0]["name"])
		assert.NotContains(t, out[0], "id")
	})

	t.Run("empty name value is still present", func(t *testing.T) {
		srv := newTestServer(t)
		srv.recipes.EXPECT().
			SearchRecipes(mock.Anything, mock.MatchedBy(func(in *usecase.SearchRecipesInput) bool {
				return in.Name != nil && *in.Name == "" && in.Category == nil
			})).
			Return([]*entity.Recipe{}, nil)

		rec := srv.do(http.MethodGet, "/api/recipe/search?name=", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("neither parameter", func(t *testing.T) {
		srv := newTestServer(t)
		srv.recipes.EXPECT().
			SearchRecipes(mock.Anything, &usecase.SearchRecipesInput{}).
			Return(nil, domainerrors.ErrInvalidSearchQuery)

		rec := srv.do(http.MethodGet, "/api/recipe/search", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_SEARCH_QUERY", decodeError(t, rec.Body.Bytes()).Error.Code)
	})
}
