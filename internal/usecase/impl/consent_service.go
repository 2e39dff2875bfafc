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
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// consentService implements the ConsentUsecase interface.
type consentService struct {
	txManager     repository.TransactionManager
	policyVersion string
	logger        *slog.Logger
}

// NewConsentService is the constructor for consentService.
func NewConsentService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ConsentUsecase {
	policyVersion := ""
	if cfg.Consent != nil {
		policyVersion = cfg.Consent.PolicyVersion
	}

	return &consentService{
		txManager:     txManager,
		policyVersion: policyVersion,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *consentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GrantConsent records a new active grant. Any previous active grant of the
// same type is revoked in the same transaction, so at most one record per
// (user, type) stays active. The ledger entry and its audit record commit or
// roll back together.
func (srv *consentService) GrantConsent(ctx context.Context, input *usecase.GrantConsentInput) (*entity.ConsentRecord, error) {
	srv.log(ctx).Info("Granting consent", slog.Any("user_id", input.UserID), slog.String("consent_type", input.ConsentType.String()))

	if !input.ConsentType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown consent type " + input.ConsentType.String())
	}

	var record *entity.ConsentRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		consentRepo := repoFactory.ConsentRepo()

		// 1. Verify user exists
		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Supersede any previous active grant of this type.
		now := time.Now()
		if _, err := consentRepo.RevokeActiveConsents(ctx, input.UserID, input.ConsentType, now); err != nil {
			return errors.Wrap(err, "failed to supersede previous consent")
		}

		// 3. Record the new grant.
		record = &entity.ConsentRecord{
			UserID:      input.UserID,
			ConsentType: input.ConsentType,
			Version:     srv.policyVersion,
			Granted:     true,
			GrantedAt:   now,
			Method:      "settings",
			IPAddress:   input.IPAddress,
		}
		if err := consentRepo.CreateConsent(ctx, record); err != nil {
			return errors.WithStack(err)
		}

		// 4. Append the audit entry in the same transaction.
		return srv.appendConsentAudit(ctx, repoFactory, user, entity.AuditActionConsentGranted, record, input.IPAddress)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute grant consent transaction", slog.Any("error", err), slog.Any("user_id", input.UserID))

		return nil, errors.Wrap(err, "failed to execute grant consent transaction")
	}
	srv.log(ctx).Info("Consent granted", slog.Any("user_id", input.UserID), slog.String("consent_type", input.ConsentType.String()))

	return record, nil
}

// RevokeConsent revokes the user's active grant of the given type. Revoking a
// type with no active grant is reported as not found.
func (srv *consentService) RevokeConsent(ctx context.Context, input *usecase.RevokeConsentInput) error {
	srv.log(ctx).Info("Revoking consent", slog.Any("user_id", input.UserID), slog.String("consent_type", input.ConsentType.String()))

	if !input.ConsentType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown consent type " + input.ConsentType.String())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		consentRepo := repoFactory.ConsentRepo()

		// 1. Verify user exists
		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Stamp the active grant revoked.
		now := time.Now()
		revoked, err := consentRepo.RevokeActiveConsents(ctx, input.UserID, input.ConsentType, now)
		if err != nil {
			return errors.Wrap(err, "failed to revoke consent")
		}
		if revoked == 0 {
			return errors.Wrap(domainerrors.ErrNotFound, "no active consent of this type")
		}

		// 3. Append the audit entry in the same transaction.
		record := &entity.ConsentRecord{
			UserID:      input.UserID,
			ConsentType: input.ConsentType,
			RevokedAt:   &now,
		}

		return srv.appendConsentAudit(ctx, repoFactory, user, entity.AuditActionConsentRevoked, record, input.IPAddress)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute revoke consent transaction", slog.Any("error", err), slog.Any("user_id", input.UserID))

		return errors.Wrap(err, "failed to execute revoke consent transaction")
	}
	srv.log(ctx).Info("Consent revoked", slog.Any("user_id", input.UserID), slog.String("consent_type", input.ConsentType.String()))

	return nil
}

// HasActiveConsent reports whether the user currently holds an active grant.
func (srv *consentService) HasActiveConsent(ctx context.Context, userID uuid.UUID, consentType entity.ConsentType) (bool, error) {
	var active bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consentRepo := repoFactory.ConsentRepo()

		var err error
		active, err = consentRepo.HasActiveConsent(ctx, userID, consentType)
		if err != nil {
			return errors.Wrap(err, "failed to check active consent")
		}

		return nil
	})

	if err != nil {
		return false, errors.Wrap(err, "failed to execute consent check transaction")
	}

	return active, nil
}

// ListConsents returns the user's full consent history, newest first.
func (srv *consentService) ListConsents(ctx context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error) {
	srv.log(ctx).Debug("Listing consents", slog.Any("user_id", userID))

	var records []*entity.ConsentRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		consentRepo := repoFactory.ConsentRepo()

		// 1. Verify user exists
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Fetch the history.
		var err error
		records, err = consentRepo.ListConsentsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list consents")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute list consents transaction", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to execute list consents transaction")
	}

	return records, nil
}

// appendConsentAudit writes a consent change to the audit log inside the
// caller's transaction.
func (srv *consentService) appendConsentAudit(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User, action entity.AuditAction, record *entity.ConsentRecord, ipAddress string) error {
	auditRepo := repoFactory.AuditRepo()

	userID := user.ID
	email := user.Email
	role := user.Role.String()
	resourceID := record.ConsentType.String()

	entry := &entity.AuditEntry{
		UserID:       &userID,
		UserEmail:    &email,
		UserRole:     &role,
		Action:       action,
		ResourceType: "consent",
		ResourceID:   &resourceID,
		IPAddress:    ipAddress,
		Success:      true,
		Timestamp:    time.Now(),
	}

	if err := auditRepo.CreateAuditEntry(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to append consent audit entry")
	}

	return nil
}
