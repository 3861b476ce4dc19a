package handler_test

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipes/config"
	httpdelivery "recipes/internal/delivery/http"
	"recipes/internal/delivery/http/middleware"
	"recipes/internal/delivery/http/router"
	"recipes/internal/delivery/http/router/handler"
	mockService "recipes/internal/mocks/service"
	mockUsecase "recipes/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
)

type testServer struct {
	echo     *echo.Echo
	recipes  *mockUsecase.MockRecipeUsecase
	accounts *mockUsecase.MockAccountUsecase
	tokens   *mockService.MockTokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recipes := mockUsecase.NewMockRecipeUsecase(t)
	accounts := mockUsecase.NewMockAccountUsecase(t)
	tokens := mockService.NewMockTokenService(t)

	e := httpdelivery.NewEcho(&config.Config{}, logger)
	router.NewRouter(router.RouterParams{
		RecipeHandler:  handler.NewRecipeHandler(handler.RecipeHandlerParams{RecipeUC: recipes, Logger: logger}),
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accounts, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(accounts, tokens),
	}).RegisterRoutes(e)

	return &testServer{echo: e, recipes: recipes, accounts: accounts, tokens: tokens}
}

func (s *testServer) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func basicAuth(email, password string) http.Header {
	token := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))

	return http.Header{echo.HeaderAuthorization: []string{"Basic " + token}}
}

func bearerAuth(token string) http.Header {
	return http.Header{echo.HeaderAuthorization: []string{"Bearer " + token}}
}
