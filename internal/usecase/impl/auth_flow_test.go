package impl

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"vitals/config"
	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	"vitals/internal/infra/auth"
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// The flow tests exercise the auth service against in-memory repositories and
// the real JWT and bcrypt implementations, covering the lifecycle a client
// actually drives: register, login, rotate, replay, logout.

type memoryStore struct {
	usersByID      map[uuid.UUID]*entity.User
	usersByEmail   map[string]*entity.User
	tokensByHash   map[string]*entity.RefreshToken
	consentRecords []*entity.ConsentRecord
	auditEntries   []*entity.AuditEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		usersByID:    make(map[uuid.UUID]*entity.User),
		usersByEmail: make(map[string]*entity.User),
		tokensByHash: make(map[string]*entity.RefreshToken),
	}
}

// memoryTxManager runs the unit of work directly against the shared store.
// Rollback is not simulated; the flow tests only assert on committed state.
type memoryTxManager struct {
	store *memoryStore
}

func (m *memoryTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&memoryFactory{store: m.store})
}

type memoryFactory struct {
	store *memoryStore
}

func (f *memoryFactory) UserRepo() repository.UserRepository {
	return &memoryUserRepo{store: f.store}
}

func (f *memoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return &memoryRefreshTokenRepo{store: f.store}
}

func (f *memoryFactory) ConsentRepo() repository.ConsentRepository {
	return &memoryConsentRepo{store: f.store}
}

func (f *memoryFactory) AuditRepo() repository.AuditRepository {
	return &memoryAuditRepo{store: f.store}
}

type memoryUserRepo struct {
	store *memoryStore
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	email := strings.ToLower(user.Email)
	if _, ok := r.store.usersByEmail[email]; ok {
		return domainerrors.ErrEmailAlreadyRegistered
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = email
	user.CreatedAt = time.Now()

	r.store.usersByID[user.ID] = user
	r.store.usersByEmail[email] = user

	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.usersByID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.store.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.usersByID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}

	user.Email = strings.ToLower(user.Email)
	r.store.usersByID[user.ID] = user
	r.store.usersByEmail[user.Email] = user

	return nil
}

type memoryRefreshTokenRepo struct {
	store *memoryStore
}

func (r *memoryRefreshTokenRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	// Mirrors the unique index on the hash column.
	if _, ok := r.store.tokensByHash[token.TokenHash]; ok {
		return errors.New("duplicate token hash")
	}

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	r.store.tokensByHash[token.TokenHash] = token

	return nil
}

func (r *memoryRefreshTokenRepo) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	token, ok := r.store.tokensByHash[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return token, nil
}

func (r *memoryRefreshTokenRepo) FindRefreshTokenByID(_ context.Context, id uuid.UUID) (*entity.RefreshToken, error) {
	for _, token := range r.store.tokensByHash {
		if token.ID == id {
			return token, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *memoryRefreshTokenRepo) FindRefreshTokensByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	var tokens []*entity.RefreshToken
	now := time.Now()
	for _, token := range r.store.tokensByHash {
		if token.UserID == userID && token.ExpiresAt.After(now) {
			tokens = append(tokens, token)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].CreatedAt.After(tokens[j].CreatedAt)
	})

	return tokens, nil
}

func (r *memoryRefreshTokenRepo) DeleteRefreshToken(_ context.Context, id uuid.UUID) error {
	for hash, token := range r.store.tokensByHash {
		if token.ID == id {
			delete(r.store.tokensByHash, hash)

			return nil
		}
	}

	return repository.ErrRefreshTokenNotFound
}

func (r *memoryRefreshTokenRepo) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	if _, ok := r.store.tokensByHash[tokenHash]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.store.tokensByHash, tokenHash)

	return nil
}

func (r *memoryRefreshTokenRepo) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) error {
	for hash, token := range r.store.tokensByHash {
		if token.UserID == userID {
			delete(r.store.tokensByHash, hash)
		}
	}

	return nil
}

func (r *memoryRefreshTokenRepo) DeleteExpiredRefreshTokens(_ context.Context) error {
	now := time.Now()
	for hash, token := range r.store.tokensByHash {
		if !token.ExpiresAt.After(now) {
			delete(r.store.tokensByHash, hash)
		}
	}

	return nil
}

type memoryConsentRepo struct {
	store *memoryStore
}

func (r *memoryConsentRepo) CreateConsent(_ context.Context, record *entity.ConsentRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.store.consentRecords = append(r.store.consentRecords, record)

	return nil
}

func (r *memoryConsentRepo) RevokeActiveConsents(_ context.Context, userID uuid.UUID, consentType entity.ConsentType, revokedAt time.Time) (int64, error) {
	var closed int64
	for _, record := range r.store.consentRecords {
		if record.UserID == userID && record.ConsentType == consentType && record.Active() {
			record.Granted = false
			stamp := revokedAt
			record.RevokedAt = &stamp
			closed++
		}
	}

	return closed, nil
}

func (r *memoryConsentRepo) HasActiveConsent(_ context.Context, userID uuid.UUID, consentType entity.ConsentType) (bool, error) {
	for _, record := range r.store.consentRecords {
		if record.UserID == userID && record.ConsentType == consentType && record.Active() {
			return true, nil
		}
	}

	return false, nil
}

func (r *memoryConsentRepo) ListConsentsByUserID(_ context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error) {
	var records []*entity.ConsentRecord
	for _, record := range r.store.consentRecords {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].GrantedAt.After(records[j].GrantedAt)
	})

	return records, nil
}

type memoryAuditRepo struct {
	store *memoryStore
}

func (r *memoryAuditRepo) CreateAuditEntry(_ context.Context, entry *entity.AuditEntry) error {
	r.store.auditEntries = append(r.store.auditEntries, entry)

	return nil
}

func flowConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "flow-test-access-secret"
	cfg.SecretKey.Refresh = "flow-test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:      bcrypt.MinCost,
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	cfg.Consent = &config.ConsentConfig{PolicyVersion: testPolicyVersion}

	return cfg
}

type authFlowFixture struct {
	store   *memoryStore
	service usecase.AuthUsecase
}

func createAuthFlowFixture(t *testing.T) *authFlowFixture {
	cfg := flowConfig()

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := newMemoryStore()

	return &authFlowFixture{
		store:   store,
		service: NewAuthService(cfg, &memoryTxManager{store: store}, auth.NewBcryptHasher(cfg), tokenService, testLogger()),
	}
}

func registerAlice(t *testing.T, f *authFlowFixture) *usecase.RegisterOutput {
	t.Helper()

	output, err := f.service.RegisterPatient(context.Background(), &usecase.RegisterPatientInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
		Age:      34,
		AcceptedConsents: []entity.ConsentType{
			entity.ConsentDataProcessing,
			entity.ConsentTermsOfService,
		},
		IPAddress: "203.0.113.7",
	})
	require.NoError(t, err)

	return output
}

func TestAuthFlow_RegisterLoginRotateReplay(t *testing.T) {
	f := createAuthFlowFixture(t)
	ctx := context.Background()

	registered := registerAlice(t, f)
	assert.Equal(t, entity.RolePatient, registered.User.Role)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.NotEqual(t, "correct horse battery", registered.User.PasswordHash)
	assert.Len(t, f.store.tokensByHash, 1)
	assert.Len(t, f.store.consentRecords, 2)

	// Login with a differently cased email opens a second session.
	loggedIn, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "Alice@Example.COM",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.Len(t, f.store.tokensByHash, 2)

	// Rotation consumes the presented token and issues a replacement.
	rotated, err := f.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: loggedIn.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, loggedIn.RefreshToken, rotated.RefreshToken)
	assert.Len(t, f.store.tokensByHash, 2)

	// Replaying the consumed token fails as a revoked session.
	_, err = f.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: loggedIn.RefreshToken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionRevoked))

	// The replacement still works.
	_, err = f.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: rotated.RefreshToken})
	require.NoError(t, err)
}

func TestAuthFlow_DuplicateRegistrationConflicts(t *testing.T) {
	f := createAuthFlowFixture(t)

	registerAlice(t, f)

	_, err := f.service.RegisterPatient(context.Background(), &usecase.RegisterPatientInput{
		Name:     "Alice Again",
		Email:    "ALICE@example.com",
		Password: "another password",
		Age:      34,
		AcceptedConsents: []entity.ConsentType{
			entity.ConsentDataProcessing,
			entity.ConsentTermsOfService,
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthFlow_WrongPasswordIsGeneric(t *testing.T) {
	f := createAuthFlowFixture(t)
	ctx := context.Background()

	registerAlice(t, f)

	_, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "not the password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = f.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthFlow_TargetedAndGlobalLogout(t *testing.T) {
	f := createAuthFlowFixture(t)
	ctx := context.Background()

	registered := registerAlice(t, f)

	loggedIn, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.Len(t, f.store.tokensByHash, 2)

	// Targeted logout removes exactly the presented session.
	require.NoError(t, f.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: loggedIn.RefreshToken}))
	assert.Len(t, f.store.tokensByHash, 1)

	// Logging the same session out again is idempotent.
	require.NoError(t, f.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: loggedIn.RefreshToken}))
	assert.Len(t, f.store.tokensByHash, 1)

	// Global logout clears the remaining session; its token stops refreshing.
	require.NoError(t, f.service.LogoutAllDevices(ctx, registered.User.ID))
	assert.Empty(t, f.store.tokensByHash)

	_, err = f.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: registered.RefreshToken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionRevoked))
}
