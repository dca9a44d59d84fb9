package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrInvalidTenantID     = errors.New("invalid tenant id")
	ErrInvalidContactInfo  = errors.New("invalid contact info")
	ErrApartmentNotVacant  = errors.New("apartment is not vacant")
	ErrApartmentTaken      = errors.New("apartment is bound to another active tenant")
	ErrTenantInactive      = errors.New("tenant is not active")
	ErrTenantNoApartment   = errors.New("tenant has no apartment")
	ErrApartmentIDRequired = errors.New("apartment id is required")
)

// ContactInfo is where a new tenant is reached. Both fields are optional.
type ContactInfo struct {
	Email string
	Phone string
}

func (c ContactInfo) normalize() (ContactInfo, error) {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Email != "" {
		addr, err := mail.ParseAddress(c.Email)
		if err != nil || addr.Address != c.Email {
			return ContactInfo{}, fmt.Errorf("%w: email %q is malformed", ErrInvalidContactInfo, c.Email)
		}
	}
	return c, nil
}

// TenantCredentials is returned exactly once, when a passcode is generated.
type TenantCredentials struct {
	Tenant     entities.Tenant `json:"tenant"`
	RoomNumber string          `json:"room_number"`
	Passcode   string          `json:"passcode"`
}

// TenantDashboard is the landing view of the tenant area.
type TenantDashboard struct {
	Tenant         entities.Tenant              `json:"tenant"`
	Apartment      *entities.Apartment          `json:"apartment,omitempty"`
	Agreement      *entities.Agreement          `json:"agreement,omitempty"`
	NextPayment    *entities.Payment            `json:"next_payment,omitempty"`
	RecentPayments []entities.Payment           `json:"recent_payments"`
	RecentTickets  []entities.MaintenanceTicket `json:"recent_tickets"`
}

type ITenantUseCase interface {
	AssignApartment(ctx context.Context, apartmentID string, contact ContactInfo) (TenantCredentials, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
	Deactivate(ctx context.Context, id string) (entities.Tenant, error)
	Activate(ctx context.Context, id string) (entities.Tenant, error)
	ResetPasscode(ctx context.Context, id string) (TenantCredentials, error)
	Dashboard(ctx context.Context, tenantID string) (TenantDashboard, error)
}

type TenantUseCase struct {
	apartments interfaces.IApartmentRepository
	tenants    interfaces.ITenantRepository
	agreements interfaces.IAgreementRepository
	payments   interfaces.IPaymentRepository
	tickets    interfaces.ITicketRepository
	hasher     interfaces.ICredentialHasher
	notifier   interfaces.INotifier
	settings   PortalSettings
	logger     *zap.Logger
	now        func() time.Time
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(
	apartments interfaces.IApartmentRepository,
	tenants interfaces.ITenantRepository,
	agreements interfaces.IAgreementRepository,
	payments interfaces.IPaymentRepository,
	tickets interfaces.ITicketRepository,
	hasher interfaces.ICredentialHasher,
	notifier interfaces.INotifier,
	settings PortalSettings,
	logger *zap.Logger,
) *TenantUseCase {
	return &TenantUseCase{
		apartments: apartments,
		tenants:    tenants,
		agreements: agreements,
		payments:   payments,
		tickets:    tickets,
		hasher:     hasher,
		notifier:   notifier,
		settings:   settings.withDefaults(),
		logger:     orNop(logger),
		now:        time.Now,
	}
}

// AssignApartment creates the tenant of a vacant apartment and returns its one-time
// passcode. The repository write is conditional, so of two concurrent assignments
// only one can succeed; the loser gets ErrApartmentNotVacant.
func (u *TenantUseCase) AssignApartment(ctx context.Context, apartmentID string, contact ContactInfo) (TenantCredentials, error) {
	apartmentID = strings.TrimSpace(apartmentID)
	if apartmentID == "" {
		return TenantCredentials{}, ErrApartmentIDRequired
	}
	contact, err := contact.normalize()
	if err != nil {
		return TenantCredentials{}, err
	}

	apt, err := u.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		return TenantCredentials{}, err
	}
	if apt.ID == "" {
		return TenantCredentials{}, ErrApartmentNotFound
	}
	if apt.Status != entities.ApartmentStatusVacant || apt.OccupantTenantID != "" {
		return TenantCredentials{}, ErrApartmentNotVacant
	}

	passcode, err := u.hasher.Generate()
	if err != nil {
		return TenantCredentials{}, err
	}
	hash, err := u.hasher.Hash(passcode)
	if err != nil {
		return TenantCredentials{}, err
	}

	now := u.now().UTC()
	tenant, err := u.tenants.Assign(ctx, entities.Tenant{
		ID:             uuid.NewString(),
		Email:          contact.Email,
		Phone:          contact.Phone,
		ApartmentID:    apt.ID,
		PasscodeHash:   hash,
		MustChangePass: true,
		IsActive:       true,
		OnboardingDone: false,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			u.logger.Info("[tenant][usecase] assign lost", zap.String("apartment_id", apt.ID))
			return TenantCredentials{}, ErrApartmentNotVacant
		}
		return TenantCredentials{}, err
	}

	u.logger.Info("[tenant][usecase] assigned",
		zap.String("tenant_id", tenant.ID),
		zap.String("apartment_id", apt.ID),
		zap.String("room_number", apt.RoomNumber),
	)
	return TenantCredentials{Tenant: tenant, RoomNumber: apt.RoomNumber, Passcode: passcode}, nil
}

func (u *TenantUseCase) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tenant{}, ErrInvalidTenantID
	}
	t, err := u.tenants.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (u *TenantUseCase) List(ctx context.Context) ([]entities.Tenant, error) {
	list, err := u.tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(list, func(a, b entities.Tenant) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return list, nil
}

// Deactivate is the only way a tenant leaves; the record is kept.
func (u *TenantUseCase) Deactivate(ctx context.Context, id string) (entities.Tenant, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if !t.IsActive {
		return t, nil
	}
	updated, err := u.tenants.SetActive(ctx, t.ID, false)
	if err != nil {
		return entities.Tenant{}, err
	}
	u.logger.Info("[tenant][usecase] deactivated", zap.String("tenant_id", t.ID), zap.String("apartment_id", t.ApartmentID))
	return updated, nil
}

func (u *TenantUseCase) Activate(ctx context.Context, id string) (entities.Tenant, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.IsActive {
		return t, nil
	}
	updated, err := u.tenants.SetActive(ctx, t.ID, true)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Tenant{}, ErrApartmentTaken
		}
		return entities.Tenant{}, err
	}
	u.logger.Info("[tenant][usecase] activated", zap.String("tenant_id", t.ID))
	return updated, nil
}

// ResetPasscode issues a fresh passcode, forces rotation on next login and sends
// the credentials to the tenant. Delivery is best effort; the admin gets the
// plaintext in the response either way.
func (u *TenantUseCase) ResetPasscode(ctx context.Context, id string) (TenantCredentials, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return TenantCredentials{}, err
	}
	if !t.IsActive {
		return TenantCredentials{}, ErrTenantInactive
	}
	apt, err := u.apartments.GetByID(ctx, t.ApartmentID)
	if err != nil {
		return TenantCredentials{}, err
	}
	if apt.ID == "" {
		return TenantCredentials{}, ErrTenantNoApartment
	}

	passcode, err := u.hasher.Generate()
	if err != nil {
		return TenantCredentials{}, err
	}
	hash, err := u.hasher.Hash(passcode)
	if err != nil {
		return TenantCredentials{}, err
	}
	updated, err := u.tenants.UpdatePasscode(ctx, t.ID, hash, true)
	if err != nil {
		return TenantCredentials{}, err
	}
	if updated.ID == "" {
		return TenantCredentials{}, ErrTenantNotFound
	}

	loginURL := u.settings.url("/tenant-login")
	res := u.notifier.Notify(ctx, interfaces.Notification{
		To:       updated.Contact(),
		Subject:  "Your " + u.settings.BrandName + " Tenant Portal Credentials",
		Template: interfaces.TemplateCredentials,
		Data: map[string]any{
			"Name":       updated.GreetingName(),
			"Brand":      u.settings.BrandName,
			"RoomNumber": apt.RoomNumber,
			"Passcode":   passcode,
			"LoginURL":   loginURL,
		},
		SMS: fmt.Sprintf("%s: your tenant portal login is room %s, passcode %s. You will be asked to change it at first sign-in: %s",
			u.settings.BrandName, apt.RoomNumber, passcode, loginURL),
	})
	if res.Failed() {
		u.logger.Warn("[tenant][usecase] credentials delivery failed", zap.String("tenant_id", t.ID), zap.Strings("errors", res.Errors))
	}

	u.logger.Info("[tenant][usecase] passcode reset", zap.String("tenant_id", t.ID))
	return TenantCredentials{Tenant: updated, RoomNumber: apt.RoomNumber, Passcode: passcode}, nil
}

const (
	dashboardRecentPayments = 3
	dashboardRecentTickets  = 2
)

func (u *TenantUseCase) Dashboard(ctx context.Context, tenantID string) (TenantDashboard, error) {
	t, err := u.GetByID(ctx, tenantID)
	if err != nil {
		return TenantDashboard{}, err
	}
	view := TenantDashboard{Tenant: t, RecentPayments: []entities.Payment{}, RecentTickets: []entities.MaintenanceTicket{}}

	if t.ApartmentID != "" {
		apt, err := u.apartments.GetByID(ctx, t.ApartmentID)
		if err != nil {
			return TenantDashboard{}, err
		}
		if apt.ID != "" {
			view.Apartment = &apt
		}
	}

	agreements, err := u.agreements.ListByTenantID(ctx, t.ID)
	if err != nil {
		return TenantDashboard{}, err
	}
	view.Agreement = latestAgreement(agreements)

	payments, err := u.payments.ListByTenantID(ctx, t.ID)
	if err != nil {
		return TenantDashboard{}, err
	}
	view.NextPayment = nextOpenPayment(payments)
	slices.SortFunc(payments, func(a, b entities.Payment) int { return b.CreatedAt.Compare(a.CreatedAt) })
	view.RecentPayments = append(view.RecentPayments, payments[:min(len(payments), dashboardRecentPayments)]...)

	tickets, err := u.tickets.ListByTenantID(ctx, t.ID)
	if err != nil {
		return TenantDashboard{}, err
	}
	slices.SortFunc(tickets, func(a, b entities.MaintenanceTicket) int { return b.CreatedAt.Compare(a.CreatedAt) })
	view.RecentTickets = append(view.RecentTickets, tickets[:min(len(tickets), dashboardRecentTickets)]...)

	return view, nil
}

// latestAgreement picks the newest agreement that is not expired.
func latestAgreement(list []entities.Agreement) *entities.Agreement {
	var latest *entities.Agreement
	for i := range list {
		a := list[i]
		if a.Status == entities.AgreementStatusExpired {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = &a
		}
	}
	return latest
}

// nextOpenPayment is the earliest-due payment still owed.
func nextOpenPayment(list []entities.Payment) *entities.Payment {
	var next *entities.Payment
	for i := range list {
		p := list[i]
		if p.Status == entities.PaymentStatusPaid {
			continue
		}
		if next == nil || p.DueDate.Before(next.DueDate) {
			next = &p
		}
	}
	return next
}
