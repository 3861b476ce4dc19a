package impl

import (
	"context"
	"testing"
	"time"

	"recipes/internal/domain/entity"
	domainerrors "recipes/internal/domain/errors"
	"recipes/internal/domain/repository"
	mockRepo "recipes/internal/mocks/repository"
	mockService "recipes/internal/mocks/service"
	"recipes/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceMocks struct {
	accountRepo   *mockRepo.MockAccountRepository
	txAccountRepo *mockRepo.MockAccountRepository
	hasher        *mockService.MockPasswordHasher
	tokenService  *mockService.MockTokenService
}

func newAccountServiceUnderTest(t *testing.T) (usecase.AccountUsecase, *accountServiceMocks) {
	t.Helper()

	mocks := &accountServiceMocks{
		accountRepo:   mockRepo.NewMockAccountRepository(t),
		txAccountRepo: mockRepo.NewMockAccountRepository(t),
		hasher:        mockService.NewMockPasswordHasher(t),
		tokenService:  mockService.NewMockTokenService(t),
	}
	mocks.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()

	srv := NewAccountService(AccountServiceParams{
		TxManager:    newPassthroughTxManager(t, nil, mocks.txAccountRepo),
		AccountRepo:  mocks.accountRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Logger:       newDiscardLogger(),
	})

	return srv, mocks
}

func TestAccountService_Register_Success(t *testing.T) {
	srv, m := newAccountServiceUnderTest(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("12345678").Return("hashed", nil)
	m.txAccountRepo.EXPECT().Exists(ctx, "cook@test.com").Return(false, nil)
	m.txAccountRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(account *entity.Account) bool {
			return account.Email == "cook@test.com" && account.PasswordHash == "hashed"
		})).
		Return(nil)

	err := srv.Register(ctx, &usecase.RegisterInput{Email: "cook@test.com", Password: "12345678"})
	assert.NoError(t, err)
}

func TestAccountService_Register_InputRules(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterInput
		want  *domainerrors.BaseError
	}{
		{name: "nil input", input: nil, want: domainerrors.ErrInvalidEmail},
		{name: "no at sign", input: &usecase.RegisterInput{Email: "cooktest.com", Password: "12345678"}, want: domainerrors.ErrInvalidEmail},
		{name: "no domain dot", input: &usecase.RegisterInput{Email: "cook@test", Password: "12345678"}, want: domainerrors.ErrInvalidEmail},
		{name: "short password", input: &usecase.RegisterInput{Email: "cook@test.com", Password: "1234567"}, want: domainerrors.ErrPasswordStrength},
		{name: "whitespace padded password", input: &usecase.RegisterInput{Email: "cook@test.com", Password: "    1234567    "}, want: domainerrors.ErrPasswordStrength},
		{name: "seven characters split by spaces", input: &usecase.RegisterInput{Email: "cook@test.com", Password: "1 2 3 4 5 6 7"}, want: domainerrors.ErrPasswordStrength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newAccountServiceUnderTest(t)

			err := srv.Register(context.Background(), tt.input)
			assertAppError(t, err, tt.want)
		})
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	srv, m := newAccountServiceUnderTest(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("12345678").Return("hashed", nil)
	m.txAccountRepo.EXPECT().Exists(ctx, "cook@test.com").Return(true, nil)

	err := srv.Register(ctx, &usecase.RegisterInput{Email: "cook@test.com", Password: "12345678"})
	assertAppError(t, err, domainerrors.ErrAccountAlreadyExists)
	m.txAccountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_ConcurrentDuplicate(t *testing.T) {
	srv, m := newAccountServiceUnderTest(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("12345678").Return("hashed", nil)
	m.txAccountRepo.EXPECT().Exists(ctx, "cook@test.com").Return(false, nil)
	m.txAccountRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrAccountAlreadyExists)

	err := srv.Register(ctx, &usecase.RegisterInput{Email: "cook@test.com", Password: "12345678"})
	assertAppError(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	srv, m := newAccountServiceUnderTest(t)

	m.hasher.EXPECT().Hash("12345678").Return("", errors.New("entropy exhausted"))

	err := srv.Register(context.Background(), &usecase.RegisterInput{Email: "cook@test.com", Password: "12345678"})
	assertAppError(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_LoadCredentials(t *testing.T) {
	srv, m := newAccountServiceUnderTest(t)
	ctx := context.Background()

	account := &entity.Account{Email: "cook@test.com", PasswordHash: "hashed"}
	m.accountRepo.EXPECT().FindByEmail(ctx, "cook@test.com").Return(account, nil)
	m.accountRepo.EXPECT().FindByEmail(ctx, "ghost@test.com").Return(nil, repository.ErrAccountNotFound)
	m.accountRepo.EXPECT().FindByEmail(ctx, "broken@test.com").Return(nil, errors.New("db down"))

	found, err := srv.LoadCredentials(ctx, "cook@test.com")
	require.NoError(t, err)
	assert.Equal(t, account, found)

	_, err = srv.LoadCredentials(ctx, "ghost@test.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = srv.LoadCredentials(ctx, "broken@test.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountService_Authenticate(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		srv, m := newAccountServiceUnderTest(t)
		ctx := context.Background()

		m.accountRepo.EXPECT().FindByEmail(ctx, "cook@test.com").Return(&entity.Account{Email: "cook@test.com", PasswordHash: "hashed"}, nil)
		m.hasher.EXPECT().Check("12345678", "hashed").Return(true)

		email, err := srv.Authenticate(ctx, "cook@test.com", "12345678")
		require.NoError(t, err)
		assert.Equal(t, "cook@test.com", email)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		srv, m := newAccountServiceUnderTest(t)
		ctx := context.Background()

		m.accountRepo.EXPECT().FindByEmail(ctx, "cook@test.com").Return(&entity.Account{Email: "cook@test.com", PasswordHash: "hashed"}, nil)
		m.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)
		m.accountRepo.EXPECT().FindByEmail(ctx, "ghost@test.com").Return(nil, repository.ErrAccountNotFound)
		m.hasher.EXPECT().Check("wrong-password", "dummy-hash").Return(false)

		_, wrongPasswordErr := srv.Authenticate(ctx, "cook@test.com", "wrong-password")
		_, unknownEmailErr := srv.Authenticate(ctx, "ghost@test.com", "wrong-password")

		assertAppError(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, wrongPasswordErr, unknownEmailErr)
	})
}

func TestAccountService_Login(t *testing.T) {
	srv, m := newAccountServiceUnderTest(t)
	ctx := context.Background()

	m.accountRepo.EXPECT().FindByEmail(ctx, "cook@test.com").Return(&entity.Account{Email: "cook@test.com", PasswordHash: "hashed"}, nil)
	m.hasher.EXPECT().Check("12345678", "hashed").Return(true)
	m.tokenService.EXPECT().GenerateAccessToken("cook@test.com").Return("signed-token", nil)
	m.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

	output, err := srv.Login(ctx, &usecase.LoginInput{Email: "cook@test.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "Bearer", output.TokenType)
	assert.Equal(t, int64(900), output.ExpiresIn)
}

func TestAccountService_Login_Failures(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		srv, m := newAccountServiceUnderTest(t)
		ctx := context.Background()

		m.accountRepo.EXPECT().FindByEmail(ctx, "ghost@test.com").Return(nil, repository.ErrAccountNotFound)
		m.hasher.EXPECT().Check("12345678", "dummy-hash").Return(false)

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@test.com", Password: "12345678"})
		assertAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("token signing fails", func(t *testing.T) {
		srv, m := newAccountServiceUnderTest(t)
		ctx := context.Background()

		m.accountRepo.EXPECT().FindByEmail(ctx, "cook@test.com").Return(&entity.Account{Email: "cook@test.com", PasswordHash: "hashed"}, nil)
		m.hasher.EXPECT().Check("12345678", "hashed").Return(true)
		m.tokenService.EXPECT().GenerateAccessToken("cook@test.com").Return("", errors.New("bad key"))

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "cook@test.com", Password: "12345678"})
		assertAppError(t, err, domainerrors.ErrTokenGenerationFailed)
	})

	t.Run("nil input", func(t *testing.T) {
		srv, _ := newAccountServiceUnderTest(t)

		_, err := srv.Login(context.Background(), nil)
		assertAppError(t, err, domainerrors.ErrInvalidCredentials)
	})
}
