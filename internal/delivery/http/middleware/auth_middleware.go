package middleware

import (
	"strings"

	deliverycontext "recipes/internal/delivery/context"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/domain/service"
	"recipes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	schemeBasic  = "basic"
	schemeBearer = "bearer"

	basicRealm = `Basic realm="recipes"`
)

// AuthMiddleware resolves the caller identity from HTTP Basic credentials or a bearer token.
type AuthMiddleware struct {
	accounts usecase.AccountUsecase
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase, tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts, tokenSvc: tokenSvc}
}

// Authenticate rejects the request with 401 unless it carries valid credentials.
// On success the caller email is stored on the echo.Context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, err := m.resolveCaller(c)
		if err != nil {
			return err
		}

		deliverycontext.SetCaller(c, email)

		return next(c)
	}
}

func (m *AuthMiddleware) resolveCaller(c echo.Context) (string, error) {
	scheme, credentials, found := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if !found || credentials == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	switch strings.ToLower(scheme) {
	case schemeBasic:
		email, password, ok := c.Request().BasicAuth()
		if !ok {
			return "", domainerrors.ErrUnauthenticated
		}

		caller, err := m.accounts.Authenticate(c.Request().Context(), email, password)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return "", err
			}

			return "", errors.Wrap(err, "failed to authenticate")
		}

		return caller, nil
	case schemeBearer:
		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(credentials))
		if err != nil {
			return "", domainerrors.ErrUnauthenticated
		}

		return claims.Subject, nil
	default:
		return "", domainerrors.ErrUnauthenticated
	}
}

func setBasicChallenge(c echo.Context) {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, basicRealm)
}
