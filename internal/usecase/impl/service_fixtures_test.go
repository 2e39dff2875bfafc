package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vitals/config"
	"vitals/internal/domain/repository"
	mockRepo "vitals/internal/mocks/repository"
	mockService "vitals/internal/mocks/service"
	"vitals/internal/usecase"

	"github.com/stretchr/testify/mock"
)

const testPolicyVersion = "2.1"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Consent = &config.ConsentConfig{PolicyVersion: testPolicyVersion}

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture wires a transaction manager mock whose Execute runs the callback
// against a factory configured by the test, returning the callback's error.
type txFixture struct {
	t         *testing.T
	txManager *mockRepo.MockTransactionManager
}

func (f *txFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

type authServiceFixture struct {
	txFixture

	hasher  *mockService.MockPasswordHasher
	tokens  *mockService.MockTokenService
	service usecase.AuthUsecase
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return &authServiceFixture{
		txFixture: txFixture{t: t, txManager: txManager},
		hasher:    hasher,
		tokens:    tokens,
		service:   NewAuthService(testConfig(), txManager, hasher, tokens, testLogger()),
	}
}

type consentServiceFixture struct {
	txFixture

	service usecase.ConsentUsecase
}

func createTestConsentService(t *testing.T) *consentServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	return &consentServiceFixture{
		txFixture: txFixture{t: t, txManager: txManager},
		service:   NewConsentService(testConfig(), txManager, testLogger()),
	}
}

type sessionServiceFixture struct {
	txFixture

	service usecase.SessionUsecase
}

func createTestSessionService(t *testing.T) *sessionServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	return &sessionServiceFixture{
		txFixture: txFixture{t: t, txManager: txManager},
		service:   NewSessionService(txManager, testLogger()),
	}
}

type userServiceFixture struct {
	txFixture

	service usecase.UserUsecase
}

func createTestUserService(t *testing.T) *userServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	return &userServiceFixture{
		txFixture: txFixture{t: t, txManager: txManager},
		service:   NewUserService(txManager, testLogger()),
	}
}
