// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"vitals/config"
	deliverycontext "vitals/internal/delivery/context"
	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	"vitals/internal/domain/service"
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	policyVersion string
	logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	policyVersion := ""
	if cfg.Consent != nil {
		policyVersion = cfg.Consent.PolicyVersion
	}

	return &authService{
		txManager:     txManager,
		hasher:        hasher,
		tokenService:  tokenService,
		policyVersion: policyVersion,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPatient orchestrates the complete patient registration process.
func (srv *authService) RegisterPatient(ctx context.Context, input *usecase.RegisterPatientInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting patient registration", slog.String("email", input.Email))

	if err := checkRequiredConsents(input.AcceptedConsents); err != nil {
		return nil, err
	}

	newUser := &entity.User{
		Name:           input.Name,
		Email:          input.Email,
		Role:           entity.RolePatient,
		PatientProfile: &entity.PatientProfile{Age: input.Age},
	}

	return srv.register(ctx, newUser, input.Password, input.AcceptedConsents, input.IPAddress)
}

// RegisterProvider orchestrates the complete provider registration process.
func (srv *authService) RegisterProvider(ctx context.Context, input *usecase.RegisterProviderInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting provider registration", slog.String("email", input.Email))

	if err := checkRequiredConsents(input.AcceptedConsents); err != nil {
		return nil, err
	}

	newUser := &entity.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  entity.RoleProvider,
		ProviderProfile: &entity.ProviderProfile{
			Specialty:     input.Specialty,
			LicenseNumber: input.LicenseNumber,
		},
	}

	return srv.register(ctx, newUser, input.Password, input.AcceptedConsents, input.IPAddress)
}

// register creates the user, its consent records and the first session within
// a single transaction.
func (srv *authService) register(ctx context.Context, newUser *entity.User, password string, consents []entity.ConsentType, ipAddress string) (*usecase.RegisterOutput, error) {
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	newUser.PasswordHash = hashedPassword

	var accessToken, refreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		consentRepo := repoFactory.ConsentRepo()

		// 1. Reject duplicate emails up front; the unique index is the backstop
		// for concurrent registrations.
		_, err := userRepo.FindByEmail(ctx, newUser.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Create the user together with its role profile.
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Record one consent grant per accepted type.
		now := time.Now()
		for _, consentType := range dedupeConsents(consents) {
			record := &entity.ConsentRecord{
				UserID:      newUser.ID,
				ConsentType: consentType,
				Version:     srv.policyVersion,
				Granted:     true,
				GrantedAt:   now,
				Method:      "registration",
				IPAddress:   ipAddress,
			}
			if err := consentRepo.CreateConsent(ctx, record); err != nil {
				return errors.WithStack(err)
			}
		}

		// 4. Generate the first token pair and open a session.
		accessToken, refreshTokenString, err = srv.generateTokenPair(newUser)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		return srv.storeRefreshToken(ctx, repoFactory, newUser.ID, refreshTokenString)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("error", err), slog.String("email", newUser.Email))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.log(ctx).Debug("User registered successfully", slog.Any("user_id", newUser.ID))

	return &usecase.RegisterOutput{
		User:         newUser,
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user. An unknown email is reported as invalid credentials,
		// never as a missing account.
		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 3. Generate new tokens.
		accessToken, refreshTokenString, err = srv.generateTokenPair(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 4. Securely store the new refresh token.
		if err := srv.storeRefreshToken(ctx, repoFactory, user.ID, refreshTokenString); err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("user_id", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// Refresh handles the process of issuing a new token pair using a refresh token.
// The presented token is consumed first; a token that was already consumed or
// revoked fails the whole rotation, which is how replays are detected.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Consume the presented token. Exactly one of two concurrent
		// rotations of the same token succeeds here; the loser sees not-found.
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrSessionRevoked, "refresh token already used or revoked")
			}

			return errors.Wrap(err, "failed to consume refresh token")
		}

		// 2. Fetch the user behind the session.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, "user no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 3. Generate and store the replacement pair.
		newAccessToken, newRefreshTokenString, err = srv.generateTokenPair(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		return srv.storeRefreshToken(ctx, repoFactory, user.ID, newRefreshTokenString)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}
	srv.log(ctx).Debug("Token refreshed successfully", slog.Any("user_id", claims.UserID))

	return &usecase.RefreshOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout ends the session behind the presented refresh token. A token that
// was already consumed or revoked still logs out successfully.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete its hash from storage.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				// Logging out an already-ended session is idempotent.
				return nil
			}

			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// LogoutAllDevices ends every session the user has.
func (srv *authService) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out all devices", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := refreshRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete refresh tokens")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout-all transaction", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to execute logout-all transaction")
	}
	srv.log(ctx).Info("Successfully logged out all devices", slog.Any("user_id", userID))

	return nil
}

// generateTokenPair issues an access and refresh token for the user.
func (srv *authService) generateTokenPair(user *entity.User) (string, string, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String(), user.Email)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.ID, user.Role.String())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate refresh token")
	}

	return accessToken, refreshToken, nil
}

// storeRefreshToken stores the hash of a raw refresh token, opening a session.
func (srv *authService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// checkRequiredConsents verifies every consent required at registration is present.
func checkRequiredConsents(accepted []entity.ConsentType) error {
	for _, consentType := range accepted {
		if !consentType.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown consent type " + consentType.String())
		}
	}

	acceptedSet := make(map[entity.ConsentType]struct{}, len(accepted))
	for _, consentType := range accepted {
		acceptedSet[consentType] = struct{}{}
	}

	for _, required := range entity.RequiredConsentTypes() {
		if _, ok := acceptedSet[required]; !ok {
			return domainerrors.ErrConsentRequired.WrapMessage("missing consent " + required.String())
		}
	}

	return nil
}

// dedupeConsents removes duplicate consent types while preserving order.
func dedupeConsents(consents []entity.ConsentType) []entity.ConsentType {
	seen := make(map[entity.ConsentType]struct{}, len(consents))
	result := make([]entity.ConsentType, 0, len(consents))

	for _, consentType := range consents {
		if _, ok := seen[consentType]; ok {
			continue
		}
		seen[consentType] = struct{}{}
		result = append(result, consentType)
	}

	return result
}
