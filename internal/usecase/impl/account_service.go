package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipes/internal/delivery/context"
	"recipes/internal/domain/entity"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/domain/repository"
	"recipes/internal/domain/service"
	"recipes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerTokenType = "Bearer"

// dummyPassword is hashed once so unknown-account logins still pay for a bcrypt comparison.
const dummyPassword = "recipes-timing-equalizer"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	dummyHash    string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}

	if hash, err := params.Hasher.Hash(dummyPassword); err == nil {
		srv.dummyHash = hash
	}

	return srv
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Register stores a new account with a bcrypt digest of the password.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || !entity.IsValidEmail(input.Email) {
		return domainerrors.ErrInvalidEmail
	}
	if !entity.IsStrongPassword(input.Password) {
		return domainerrors.ErrPasswordStrength
	}

	// Hash outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		exists, err := accountRepo.Exists(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check account existence")
		}
		if exists {
			return domainerrors.ErrAccountAlreadyExists
		}

		return accountRepo.Create(ctx, &entity.Account{
			Email:        input.Email,
			PasswordHash: passwordHash,
		})
	})
	switch {
	case err == nil:
	case errors.Is(err, domainerrors.ErrAccountAlreadyExists), errors.Is(err, repository.ErrAccountAlreadyExists):
		srv.log(ctx).Info("Registration rejected: email taken", slog.String("email", input.Email))

		return domainerrors.ErrAccountAlreadyExists
	default:
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Account registered", slog.String("email", input.Email))

	return nil
}

// LoadCredentials resolves an email to its stored account.
func (srv *accountService) LoadCredentials(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load credentials")
	}

	return account, nil
}

// Authenticate returns the account email when the password matches.
func (srv *accountService) Authenticate(ctx context.Context, email, password string) (string, error) {
	account, err := srv.LoadCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Check(password, srv.dummyHash)

			return "", domainerrors.ErrInvalidCredentials
		}

		return "", err
	}

	if !srv.hasher.Check(password, account.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("email", email))

		return "", domainerrors.ErrInvalidCredentials
	}

	return account.Email, nil
}

// Login authenticates the account and issues a bearer token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	email, err := srv.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateAccessToken(email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrTokenGenerationFailed
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   bearerTokenType,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}
