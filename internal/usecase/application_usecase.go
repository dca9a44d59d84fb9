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
	ErrApplicationNotFound        = errors.New("application not found")
	ErrInvalidApplicationID       = errors.New("invalid application id")
	ErrInvalidApplicationInput    = errors.New("invalid application input")
	ErrApplicationPending         = errors.New("tenant already has a pending application")
	ErrApplicationAlreadyReviewed = errors.New("application was already reviewed")
	ErrInvalidReviewDecision      = errors.New("decision must be APPROVED or REJECTED")
)

// Lease terms of the agreement drafted on approval.
const (
	defaultLeaseYears     = 1
	depositRentMultiplier = 2
)

type IApplicationUseCase interface {
	Submit(ctx context.Context, tenantID string, facts entities.ApplicantFacts) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	List(ctx context.Context) ([]entities.Application, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Application, error)
	Review(ctx context.Context, id string, decision entities.ApplicationStatus, notes string) (entities.Application, error)
}

type ApplicationUseCase struct {
	repo       interfaces.IApplicationRepository
	tenants    interfaces.ITenantRepository
	apartments interfaces.IApartmentRepository
	agreements IAgreementUseCase
	notifier   interfaces.INotifier
	settings   PortalSettings
	logger     *zap.Logger
	now        func() time.Time
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(
	repo interfaces.IApplicationRepository,
	tenants interfaces.ITenantRepository,
	apartments interfaces.IApartmentRepository,
	agreements IAgreementUseCase,
	notifier interfaces.INotifier,
	settings PortalSettings,
	logger *zap.Logger,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		repo:       repo,
		tenants:    tenants,
		apartments: apartments,
		agreements: agreements,
		notifier:   notifier,
		settings:   settings.withDefaults(),
		logger:     orNop(logger),
		now:        time.Now,
	}
}

// Submit stores a new PENDING application. A tenant can only have one pending
// application at a time, since approval drafts the agreement for the tenant's
// single apartment.
func (u *ApplicationUseCase) Submit(ctx context.Context, tenantID string, facts entities.ApplicantFacts) (entities.Application, error) {
	facts.FullName = strings.TrimSpace(facts.FullName)
	if facts.FullName == "" {
		return entities.Application{}, fmt.Errorf("%w: full name is required", ErrInvalidApplicationInput)
	}
	if !facts.DeclarationAccurate {
		return entities.Application{}, fmt.Errorf("%w: the declaration must be accepted", ErrInvalidApplicationInput)
	}
	if facts.NumberOfOccupants < 0 {
		return entities.Application{}, fmt.Errorf("%w: number of occupants cannot be negative", ErrInvalidApplicationInput)
	}

	tenant, err := u.tenants.GetByID(ctx, strings.TrimSpace(tenantID))
	if err != nil {
		return entities.Application{}, err
	}
	if tenant.ID == "" {
		return entities.Application{}, ErrTenantNotFound
	}

	existing, err := u.repo.ListByTenantID(ctx, tenant.ID)
	if err != nil {
		return entities.Application{}, err
	}
	for _, a := range existing {
		if a.Status == entities.ApplicationStatusPending {
			return entities.Application{}, ErrApplicationPending
		}
	}

	created, err := u.repo.Create(ctx, entities.Application{
		ID:          uuid.NewString(),
		TenantID:    tenant.ID,
		Facts:       facts,
		Status:      entities.ApplicationStatusPending,
		SubmittedAt: u.now().UTC(),
	})
	if err != nil {
		return entities.Application{}, err
	}
	u.logger.Info("[application][usecase] submitted", zap.String("application_id", created.ID), zap.String("tenant_id", tenant.ID))
	return created, nil
}

func (u *ApplicationUseCase) GetByID(ctx context.Context, id string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if a.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	return a, nil
}

func (u *ApplicationUseCase) List(ctx context.Context) ([]entities.Application, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortApplications(list)
	return list, nil
}

func (u *ApplicationUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Application, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrInvalidTenantID
	}
	list, err := u.repo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	sortApplications(list)
	return list, nil
}

func sortApplications(list []entities.Application) {
	slices.SortFunc(list, func(a, b entities.Application) int { return b.SubmittedAt.Compare(a.SubmittedAt) })
}

// Review records the decision. Only that write is fatal. On approval the
// onboarding flag, the tenant notification and the draft agreement follow in
// that order, each failure logged and left in place.
func (u *ApplicationUseCase) Review(ctx context.Context, id string, decision entities.ApplicationStatus, notes string) (entities.Application, error) {
	if !decision.IsDecision() {
		return entities.Application{}, ErrInvalidReviewDecision
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if current.Status != entities.ApplicationStatusPending {
		return entities.Application{}, ErrApplicationAlreadyReviewed
	}

	now := u.now().UTC()
	reviewed, err := u.repo.Review(ctx, current.ID, decision, now, strings.TrimSpace(notes))
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Application{}, ErrApplicationAlreadyReviewed
		}
		return entities.Application{}, err
	}
	if reviewed.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	log := u.logger.With(zap.String("application_id", reviewed.ID), zap.String("tenant_id", reviewed.TenantID))
	log.Info("[application][usecase] reviewed", zap.String("decision", string(decision)))

	tenant, err := u.tenants.GetByID(ctx, reviewed.TenantID)
	if err != nil || tenant.ID == "" {
		log.Error("[application][usecase] tenant lookup after review failed", zap.Error(err))
		return reviewed, nil
	}

	approved := decision == entities.ApplicationStatusApproved
	if approved {
		if _, err := u.tenants.SetOnboardingDone(ctx, tenant.ID, true); err != nil {
			log.Error("[application][usecase] onboarding flag update failed", zap.Error(err))
		}
	}

	u.notifyDecision(ctx, tenant, reviewed)

	if approved {
		u.draftAgreement(ctx, log, tenant, reviewed, now)
	}
	return reviewed, nil
}

func (u *ApplicationUseCase) notifyDecision(ctx context.Context, tenant entities.Tenant, a entities.Application) {
	word := "Approved"
	next := "Your tenancy agreement will be sent to you shortly for signature."
	if a.Status == entities.ApplicationStatusRejected {
		word = "Rejected"
		next = "Please contact the management office if you have any questions."
	}
	res := u.notifier.Notify(ctx, interfaces.Notification{
		To:       tenant.Contact(),
		Subject:  "Application " + word + " - " + u.settings.BrandName,
		Template: interfaces.TemplateApplicationStatus,
		Data: map[string]any{
			"Name":     a.Facts.FullName,
			"Brand":    u.settings.BrandName,
			"Status":   word,
			"Approved": a.Status == entities.ApplicationStatusApproved,
			"Notes":    a.ReviewNotes,
			"Next":     next,
			"Link":     u.settings.url("/tenant"),
		},
		SMS: fmt.Sprintf("%s: your rental application has been %s. %s", u.settings.BrandName, strings.ToLower(word), next),
	})
	if res.Failed() {
		u.logger.Warn("[application][usecase] decision notification failed", zap.String("application_id", a.ID), zap.Strings("errors", res.Errors))
	}
}

func (u *ApplicationUseCase) draftAgreement(ctx context.Context, log *zap.Logger, tenant entities.Tenant, a entities.Application, now time.Time) {
	apt, err := u.apartments.GetByID(ctx, tenant.ApartmentID)
	if err != nil || apt.ID == "" {
		log.Error("[application][usecase] no apartment for auto agreement", zap.String("apartment_id", tenant.ApartmentID), zap.Error(err))
		return
	}
	start := entities.DateOf(now)
	agreement, err := u.agreements.Create(ctx, AgreementInput{
		TenantID:        tenant.ID,
		ApplicationID:   a.ID,
		LeaseStart:      start,
		LeaseEnd:        start.AddDate(defaultLeaseYears, 0, 0),
		MonthlyRent:     apt.MonthlyRent,
		SecurityDeposit: apt.MonthlyRent.Mul(decimal.NewFromInt(depositRentMultiplier)),
	})
	if err != nil {
		log.Error("[application][usecase] auto agreement failed", zap.Error(err))
		return
	}
	log.Info("[application][usecase] auto agreement drafted", zap.String("agreement_id", agreement.ID))
}
