package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vitals/internal/delivery/context"
	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetActiveSessions retrieves all active sessions for a user.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error) {
	srv.log(ctx).Debug("Getting active sessions", slog.Any("user_id", userID))

	var sessions []*entity.SessionInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Verify user exists
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Get all refresh tokens for the user
		tokens, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find refresh tokens")
		}

		// 3. Convert to session info
		now := time.Now()
		for _, token := range tokens {
			sessions = append(sessions, &entity.SessionInfo{
				ID:        token.ID,
				UserID:    token.UserID,
				CreatedAt: token.CreatedAt,
				ExpiresAt: token.ExpiresAt,
				IsActive:  token.ExpiresAt.After(now),
			})
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get active sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to get active sessions")
	}
	srv.log(ctx).Debug("Successfully retrieved active sessions", slog.Any("user_id", userID), slog.Int("count", len(sessions)))

	return sessions, nil
}

// RevokeSession revokes a specific session.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Revoking session", slog.Any("user_id", userID), slog.Any("session_id", sessionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Find the session
		token, err := refreshRepo.FindRefreshTokenByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		// 2. Verify ownership
		if token.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "session does not belong to user")
		}

		// 3. Delete the session
		if err := refreshRepo.DeleteRefreshToken(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to revoke session", slog.Any("error", err), slog.Any("user_id", userID), slog.Any("session_id", sessionID))

		return errors.Wrap(err, "failed to revoke session")
	}
	srv.log(ctx).Info("Successfully revoked session", slog.Any("user_id", userID), slog.Any("session_id", sessionID))

	return nil
}

// RevokeAllSessions revokes all sessions for a user.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := refreshRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete all sessions")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to revoke all sessions")
	}
	srv.log(ctx).Info("Successfully revoked all sessions", slog.Any("user_id", userID))

	return nil
}

// CleanupExpiredSessions removes expired refresh tokens from storage.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) error {
	srv.log(ctx).Info("Cleaning up expired sessions")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := refreshRepo.DeleteExpiredRefreshTokens(ctx); err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return errors.Wrap(err, "failed to cleanup expired sessions")
	}
	srv.log(ctx).Info("Successfully cleaned up expired sessions")

	return nil
}
