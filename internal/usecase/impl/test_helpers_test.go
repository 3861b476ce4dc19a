package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"recipes/internal/domain/repository"
	mockRepo "recipes/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// newPassthroughTxManager returns a transaction manager that hands fn a factory serving the given repositories.
func newPassthroughTxManager(t *testing.T, recipes repository.RecipeRepository, accounts repository.AccountRepository) *mockRepo.MockTransactionManager {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if recipes != nil {
		factory.EXPECT().NewRecipeRepository().Return(recipes).Maybe()
	}
	if accounts != nil {
		factory.EXPECT().NewAccountRepository().Return(accounts).Maybe()
	}

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
