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
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentInput  = errors.New("invalid payment input")
	ErrInvalidPaymentStatus = errors.New("payments can only be logged as PENDING or PAID")
	ErrPaymentAlreadyExists = errors.New("payment already exists")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

const maxPaymentMethodLen = 64

// invoiceNamespace seeds the name-based ids of generated invoices.
var invoiceNamespace = uuid.MustParse("6f1d2c7e-4b5a-5e8f-9a3b-2c1d0e9f8a7b")

// LogPaymentInput is a manually recorded payment.
type LogPaymentInput struct {
	TenantID    string
	ApartmentID string
	Type        entities.PaymentType
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      entities.PaymentStatus
	Notes       string
}

// InvoiceRun summarizes one monthly invoice generation.
type InvoiceRun struct {
	DueDate time.Time `json:"due_date"`
	Created int       `json:"created"`
	Skipped int       `json:"skipped"`
}

type IPaymentUseCase interface {
	Log(ctx context.Context, in LogPaymentInput) (entities.Payment, error)
	Settle(ctx context.Context, id, method string) (entities.Payment, error)
	GenerateMonthlyInvoices(ctx context.Context) (InvoiceRun, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	tenants    interfaces.ITenantRepository
	apartments interfaces.IApartmentRepository
	logger     *zap.Logger
	now        func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	tenants interfaces.ITenantRepository,
	apartments interfaces.IApartmentRepository,
	logger *zap.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, tenants: tenants, apartments: apartments, logger: orNop(logger), now: time.Now}
}

func (u *PaymentUseCase) Log(ctx context.Context, in LogPaymentInput) (entities.Payment, error) {
	if !in.Type.Valid() {
		return entities.Payment{}, fmt.Errorf("%w: unknown type %q", ErrInvalidPaymentInput, in.Type)
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, fmt.Errorf("%w: amount must be positive", ErrInvalidPaymentInput)
	}
	if in.DueDate.IsZero() {
		return entities.Payment{}, fmt.Errorf("%w: due date is required", ErrInvalidPaymentInput)
	}
	if in.Status == "" {
		in.Status = entities.PaymentStatusPending
	}
	if in.Status != entities.PaymentStatusPending && in.Status != entities.PaymentStatusPaid {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}

	tenant, err := u.tenants.GetByID(ctx, strings.TrimSpace(in.TenantID))
	if err != nil {
		return entities.Payment{}, err
	}
	if tenant.ID == "" {
		return entities.Payment{}, ErrTenantNotFound
	}
	apartmentID := strings.TrimSpace(in.ApartmentID)
	if apartmentID == "" {
		apartmentID = tenant.ApartmentID
	}
	if apartmentID == "" {
		return entities.Payment{}, ErrTenantNoApartment
	}

	now := u.now().UTC()
	p := entities.Payment{
		ID:          uuid.NewString(),
		TenantID:    tenant.ID,
		ApartmentID: apartmentID,
		Type:        in.Type,
		Amount:      in.Amount,
		AmountPaid:  decimal.Zero,
		DueDate:     entities.DateOf(in.DueDate),
		Status:      entities.PaymentStatusPending,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
	}
	if in.Status == entities.PaymentStatusPaid {
		p.MarkPaid(entities.PaymentMethodManual, now)
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Payment{}, ErrPaymentAlreadyExists
		}
		return entities.Payment{}, err
	}
	u.logger.Info("[payment][usecase] logged",
		zap.String("payment_id", created.ID),
		zap.String("tenant_id", created.TenantID),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

// Settle marks the full amount as paid. Settling a paid payment again re-stamps
// paid_at and method.
func (u *PaymentUseCase) Settle(ctx context.Context, id, method string) (entities.Payment, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = entities.PaymentMethodManual
	}
	if len(method) > maxPaymentMethodLen {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}

	p.MarkPaid(method, u.now().UTC())
	settled, err := u.repo.Settle(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	if settled.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	u.logger.Info("[payment][usecase] settled", zap.String("payment_id", settled.ID), zap.String("method", method))
	return settled, nil
}

// GenerateMonthlyInvoices bills every active tenant for next month: one RENT
// payment and, when any utility is enabled, one UTILITY payment. Invoice ids are
// derived from (tenant, type, due date), so a second run in the same month
// creates nothing new.
func (u *PaymentUseCase) GenerateMonthlyInvoices(ctx context.Context) (InvoiceRun, error) {
	now := u.now().UTC()
	run := InvoiceRun{DueDate: entities.FirstOfNextMonth(now)}
	period := run.DueDate.Format("January 2006")

	tenants, err := u.tenants.List(ctx)
	if err != nil {
		return run, err
	}
	for _, t := range tenants {
		if !t.IsActive || t.ApartmentID == "" {
			continue
		}
		apt, err := u.apartments.GetByID(ctx, t.ApartmentID)
		if err != nil {
			return run, err
		}
		if apt.ID == "" {
			u.logger.Warn("[payment][usecase] tenant apartment missing", zap.String("tenant_id", t.ID), zap.String("apartment_id", t.ApartmentID))
			continue
		}

		invoices := []entities.Payment{
			u.invoice(t, apt, entities.PaymentTypeRent, apt.MonthlyRent, run.DueDate, "Rent for "+period, now),
		}
		if names, total := apt.EnabledUtilities(); len(names) > 0 {
			note := fmt.Sprintf("Utilities (%s) for %s", strings.Join(names, ", "), period)
			invoices = append(invoices, u.invoice(t, apt, entities.PaymentTypeUtility, total, run.DueDate, note, now))
		}

		for _, p := range invoices {
			if _, err := u.repo.Create(ctx, p); err != nil {
				if errors.Is(err, interfaces.ErrConditionFailed) {
					run.Skipped++
					continue
				}
				return run, err
			}
			run.Created++
		}
	}

	u.logger.Info("[payment][usecase] invoices generated",
		zap.String("due_date", run.DueDate.Format(entities.DateLayout)),
		zap.Int("created", run.Created),
		zap.Int("skipped", run.Skipped),
	)
	return run, nil
}

func (u *PaymentUseCase) invoice(t entities.Tenant, apt entities.Apartment, typ entities.PaymentType, amount decimal.Decimal, due time.Time, notes string, now time.Time) entities.Payment {
	return entities.Payment{
		ID:          InvoiceID(t.ID, typ, due),
		TenantID:    t.ID,
		ApartmentID: apt.ID,
		Type:        typ,
		Amount:      amount,
		AmountPaid:  decimal.Zero,
		DueDate:     due,
		Status:      entities.PaymentStatusPending,
		Notes:       notes,
		CreatedAt:   now,
	}
}

// InvoiceID is stable for a tenant, type and due date.
func InvoiceID(tenantID string, typ entities.PaymentType, due time.Time) string {
	key := tenantID + "|" + string(typ) + "|" + due.Format(entities.DateLayout)
	return uuid.NewSHA1(invoiceNamespace, []byte(key)).String()
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortPaymentsByDueDesc(list)
	return list, nil
}

func (u *PaymentUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Payment, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrInvalidTenantID
	}
	list, err := u.repo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	sortPaymentsByDueDesc(list)
	return list, nil
}

func sortPaymentsByDueDesc(list []entities.Payment) {
	slices.SortFunc(list, func(a, b entities.Payment) int { return b.DueDate.Compare(a.DueDate) })
}
