package usecase

import (
	"context"
	"errors"
	"fmt"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrAgreementNotFound          = errors.New("agreement not found")
	ErrInvalidAgreementID         = errors.New("invalid agreement id")
	ErrInvalidAgreementInput      = errors.New("invalid agreement input")
	ErrInvalidAgreementTransition = errors.New("invalid agreement status transition")
	ErrAgreementStateConflict     = errors.New("agreement changed concurrently")
	ErrSignatureRequired          = errors.New("signature is required")
	ErrTenantEmailMissing         = errors.New("tenant has no email address")
	ErrDispatchFailed             = errors.New("agreement email could not be sent")
)

// AgreementInput snapshots the commercial terms of a lease.
type AgreementInput struct {
	TenantID        string
	ApplicationID   string
	LeaseStart      time.Time
	LeaseEnd        time.Time
	MonthlyRent     decimal.Decimal
	SecurityDeposit decimal.Decimal
}

func (in AgreementInput) validate() error {
	if strings.TrimSpace(in.TenantID) == "" {
		return fmt.Errorf("%w: tenant id is required", ErrInvalidAgreementInput)
	}
	if in.LeaseStart.IsZero() || in.LeaseEnd.IsZero() || !in.LeaseEnd.After(in.LeaseStart) {
		return fmt.Errorf("%w: lease end must be after lease start", ErrInvalidAgreementInput)
	}
	if !in.MonthlyRent.IsPositive() {
		return fmt.Errorf("%w: monthly rent must be positive", ErrInvalidAgreementInput)
	}
	if in.SecurityDeposit.IsNegative() {
		return fmt.Errorf("%w: security deposit cannot be negative", ErrInvalidAgreementInput)
	}
	return nil
}

type IAgreementUseCase interface {
	Create(ctx context.Context, in AgreementInput) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	GetForTenant(ctx context.Context, tenantID, id string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Agreement, error)
	DispatchForSignature(ctx context.Context, id string) (entities.Agreement, error)
	TenantSign(ctx context.Context, tenantID, id, signatureURL string) (entities.Agreement, error)
	AdminCountersign(ctx context.Context, id, signatureURL string) (entities.Agreement, error)
}

type AgreementUseCase struct {
	repo     interfaces.IAgreementRepository
	tenants  interfaces.ITenantRepository
	notifier interfaces.INotifier
	settings PortalSettings
	logger   *zap.Logger
	now      func() time.Time
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

func NewAgreementUseCase(
	repo interfaces.IAgreementRepository,
	tenants interfaces.ITenantRepository,
	notifier interfaces.INotifier,
	settings PortalSettings,
	logger *zap.Logger,
) *AgreementUseCase {
	return &AgreementUseCase{
		repo:     repo,
		tenants:  tenants,
		notifier: notifier,
		settings: settings.withDefaults(),
		logger:   orNop(logger),
		now:      time.Now,
	}
}

func (u *AgreementUseCase) Create(ctx context.Context, in AgreementInput) (entities.Agreement, error) {
	if err := in.validate(); err != nil {
		return entities.Agreement{}, err
	}
	tenant, err := u.tenants.GetByID(ctx, strings.TrimSpace(in.TenantID))
	if err != nil {
		return entities.Agreement{}, err
	}
	if tenant.ID == "" {
		return entities.Agreement{}, ErrTenantNotFound
	}

	now := u.now().UTC()
	a := entities.Agreement{
		ID:              uuid.NewString(),
		TenantID:        tenant.ID,
		ApplicationID:   strings.TrimSpace(in.ApplicationID),
		LeaseStart:      entities.DateOf(in.LeaseStart),
		LeaseEnd:        entities.DateOf(in.LeaseEnd),
		MonthlyRent:     in.MonthlyRent,
		SecurityDeposit: in.SecurityDeposit,
		Status:          entities.AgreementStatusDraft,
		TermsAccepted:   false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Agreement{}, err
	}
	u.logger.Info("[agreement][usecase] created", zap.String("agreement_id", created.ID), zap.String("tenant_id", created.TenantID))
	return created, nil
}

func (u *AgreementUseCase) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agreement{}, ErrInvalidAgreementID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

// GetForTenant hides agreements of other tenants behind ErrAgreementNotFound.
func (u *AgreementUseCase) GetForTenant(ctx context.Context, tenantID, id string) (entities.Agreement, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.TenantID != tenantID {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

func (u *AgreementUseCase) List(ctx context.Context) ([]entities.Agreement, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(list, func(a, b entities.Agreement) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return list, nil
}

func (u *AgreementUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Agreement, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrInvalidTenantID
	}
	list, err := u.repo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(list, func(a, b entities.Agreement) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return list, nil
}

// DispatchForSignature emails the tenant a link to the signing page. Only a
// delivered email advances DRAFT to PENDING_SIGNATURE; resending a pending
// agreement leaves it unchanged.
func (u *AgreementUseCase) DispatchForSignature(ctx context.Context, id string) (entities.Agreement, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if !a.Status.CanTransitionTo(entities.AgreementStatusPendingSignature) {
		return entities.Agreement{}, fmt.Errorf("%w: cannot dispatch a %s agreement", ErrInvalidAgreementTransition, a.Status)
	}

	tenant, err := u.tenants.GetByID(ctx, a.TenantID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if tenant.ID == "" {
		return entities.Agreement{}, ErrTenantNotFound
	}
	if tenant.Email == "" {
		return entities.Agreement{}, ErrTenantEmailMissing
	}

	link := u.settings.url("/tenant/agreements/" + a.ID)
	msgID, err := u.notifier.SendEmail(ctx, interfaces.Notification{
		To:       entities.Recipient{Email: tenant.Email},
		Subject:  "Action Required: Your Tenancy Agreement is Ready",
		Template: interfaces.TemplateAgreementReady,
		Data: map[string]any{
			"Name":        tenant.GreetingName(),
			"Brand":       u.settings.BrandName,
			"Link":        link,
			"LeaseStart":  longDate(a.LeaseStart),
			"LeaseEnd":    longDate(a.LeaseEnd),
			"MonthlyRent": u.settings.money(a.MonthlyRent),
		},
	})
	if err != nil {
		u.logger.Error("[agreement][usecase] dispatch failed", zap.String("agreement_id", a.ID), zap.Error(err))
		return entities.Agreement{}, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	u.logger.Info("[agreement][usecase] dispatched", zap.String("agreement_id", a.ID), zap.String("message_id", msgID))

	if a.Status == entities.AgreementStatusPendingSignature {
		return a, nil
	}
	from := a.Status
	a.Status = entities.AgreementStatusPendingSignature
	a.UpdatedAt = u.now().UTC()
	return u.transition(ctx, a, from)
}

// TenantSign records the tenant's signature on an agreement awaiting it. Making
// sure the tenant is active afterwards is best effort.
func (u *AgreementUseCase) TenantSign(ctx context.Context, tenantID, id, signatureURL string) (entities.Agreement, error) {
	signatureURL = strings.TrimSpace(signatureURL)
	if signatureURL == "" {
		return entities.Agreement{}, ErrSignatureRequired
	}
	a, err := u.GetForTenant(ctx, tenantID, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.Status != entities.AgreementStatusPendingSignature {
		return entities.Agreement{}, fmt.Errorf("%w: cannot sign a %s agreement", ErrInvalidAgreementTransition, a.Status)
	}

	now := u.now().UTC()
	a.TenantSignatureURL = signatureURL
	a.SignedAt = &now
	a.TermsAccepted = true
	a.Status = entities.AgreementStatusSigned
	a.UpdatedAt = now
	signed, err := u.transition(ctx, a, entities.AgreementStatusPendingSignature)
	if err != nil {
		return entities.Agreement{}, err
	}

	tenant, err := u.tenants.GetByID(ctx, signed.TenantID)
	switch {
	case err != nil:
		u.logger.Error("[agreement][usecase] tenant lookup after signing failed", zap.String("tenant_id", signed.TenantID), zap.Error(err))
	case tenant.ID != "" && !tenant.IsActive:
		if _, err := u.tenants.SetActive(ctx, tenant.ID, true); err != nil {
			u.logger.Error("[agreement][usecase] tenant activation after signing failed", zap.String("tenant_id", tenant.ID), zap.Error(err))
		}
	}
	return signed, nil
}

func (u *AgreementUseCase) AdminCountersign(ctx context.Context, id, signatureURL string) (entities.Agreement, error) {
	signatureURL = strings.TrimSpace(signatureURL)
	if signatureURL == "" {
		return entities.Agreement{}, ErrSignatureRequired
	}
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.Status != entities.AgreementStatusSigned || a.TenantSignatureURL == "" {
		return entities.Agreement{}, fmt.Errorf("%w: cannot countersign a %s agreement", ErrInvalidAgreementTransition, a.Status)
	}

	now := u.now().UTC()
	a.AdminSignatureURL = signatureURL
	a.AdminSignedAt = &now
	a.Status = entities.AgreementStatusActive
	a.UpdatedAt = now
	return u.transition(ctx, a, entities.AgreementStatusSigned)
}

func (u *AgreementUseCase) transition(ctx context.Context, a entities.Agreement, from entities.AgreementStatus) (entities.Agreement, error) {
	updated, err := u.repo.Transition(ctx, a, from)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Agreement{}, ErrAgreementStateConflict
		}
		return entities.Agreement{}, err
	}
	if updated.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	u.logger.Info("[agreement][usecase] status changed",
		zap.String("agreement_id", updated.ID),
		zap.String("from", string(from)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}
