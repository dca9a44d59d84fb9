package usecase

import (
	"context"
	"fmt"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

const (
	SweepRentDueSoon   = "rent-due-soon"
	SweepRentOverdue   = "rent-overdue"
	SweepLeaseExpiring = "lease-expiring"
)

const (
	rentReminderLeadDays = 7
	leaseNoticeDays      = 30
)

// SweepResult counts what one sweep run did. Processed is the number of
// candidates matched by the date predicate.
type SweepResult struct {
	Sweep        string `json:"sweep"`
	Processed    int    `json:"processed"`
	Notified     int    `json:"notified"`
	Failed       int    `json:"failed"`
	Transitioned int    `json:"transitioned"`
}

// ISweepUseCase runs the scheduled scans. Each sweep is safe to re-run on the
// same day: state changes are guarded, notifications may repeat.
type ISweepUseCase interface {
	RentDueSoon(ctx context.Context) (SweepResult, error)
	RentOverdue(ctx context.Context) (SweepResult, error)
	LeaseExpiring(ctx context.Context) (SweepResult, error)
	Run(ctx context.Context, name string) (SweepResult, error)
}

type SweepUseCase struct {
	payments   interfaces.IPaymentRepository
	agreements interfaces.IAgreementRepository
	tenants    interfaces.ITenantRepository
	apartments interfaces.IApartmentRepository
	notifier   interfaces.INotifier
	settings   PortalSettings
	logger     *zap.Logger
	now        func() time.Time
}

var _ ISweepUseCase = (*SweepUseCase)(nil)

func NewSweepUseCase(
	payments interfaces.IPaymentRepository,
	agreements interfaces.IAgreementRepository,
	tenants interfaces.ITenantRepository,
	apartments interfaces.IApartmentRepository,
	notifier interfaces.INotifier,
	settings PortalSettings,
	logger *zap.Logger,
) *SweepUseCase {
	return &SweepUseCase{
		payments:   payments,
		agreements: agreements,
		tenants:    tenants,
		apartments: apartments,
		notifier:   notifier,
		settings:   settings.withDefaults(),
		logger:     orNop(logger),
		now:        time.Now,
	}
}

// ErrUnknownSweep is returned by Run for a name it does not know.
var ErrUnknownSweep = fmt.Errorf("unknown sweep (want %s, %s or %s)", SweepRentDueSoon, SweepRentOverdue, SweepLeaseExpiring)

func (u *SweepUseCase) Run(ctx context.Context, name string) (SweepResult, error) {
	switch name {
	case SweepRentDueSoon:
		return u.RentDueSoon(ctx)
	case SweepRentOverdue:
		return u.RentOverdue(ctx)
	case SweepLeaseExpiring:
		return u.LeaseExpiring(ctx)
	}
	return SweepResult{Sweep: name}, ErrUnknownSweep
}

func (u *SweepUseCase) RentDueSoon(ctx context.Context) (SweepResult, error) {
	res := SweepResult{Sweep: SweepRentDueSoon}
	due := entities.DateOf(u.now()).AddDate(0, 0, rentReminderLeadDays)

	candidates, err := u.payments.ListByStatusDueOn(ctx, entities.PaymentStatusPending, due)
	if err != nil {
		return res, err
	}
	contacts := newContactCache(u.tenants, u.apartments)
	for _, p := range candidates {
		res.Processed++
		c, ok := contacts.lookup(ctx, u.logger, p.TenantID, p.ApartmentID)
		if !ok {
			continue
		}
		label := p.Type.Label()
		u.record(&res, u.notifier.Notify(ctx, interfaces.Notification{
			To:       c.recipient(),
			Subject:  fmt.Sprintf("Reminder: %s Due Soon - %s", label, u.settings.BrandName),
			Template: interfaces.TemplateRentReminder,
			Data:     u.paymentData(c, p, false),
			SMS: fmt.Sprintf("%s: your %s of %s for %s is due on %s.",
				u.settings.BrandName, label, u.settings.money(p.Amount), c.unit, shortDate(p.DueDate)),
		}), p.ID)
	}
	u.logDone(res)
	return res, nil
}

// RentOverdue marks every pending payment past its due date as OVERDUE, after
// telling tenants that have an email. The transition does not depend on the
// notification outcome.
func (u *SweepUseCase) RentOverdue(ctx context.Context) (SweepResult, error) {
	res := SweepResult{Sweep: SweepRentOverdue}
	today := entities.DateOf(u.now())

	candidates, err := u.payments.ListByStatusDueBefore(ctx, entities.PaymentStatusPending, today)
	if err != nil {
		return res, err
	}
	contacts := newContactCache(u.tenants, u.apartments)
	for _, p := range candidates {
		res.Processed++
		if c, ok := contacts.lookup(ctx, u.logger, p.TenantID, p.ApartmentID); ok {
			label := p.Type.Label()
			u.record(&res, u.notifier.Notify(ctx, interfaces.Notification{
				To:       c.recipient(),
				Subject:  fmt.Sprintf("URGENT: OVERDUE %s %s", u.settings.BrandName, label),
				Template: interfaces.TemplateRentReminder,
				Data:     u.paymentData(c, p, true),
				SMS: fmt.Sprintf("URGENT %s: your %s of %s for %s was due on %s and is now OVERDUE. Please pay immediately.",
					u.settings.BrandName, label, u.settings.money(p.Amount), c.unit, shortDate(p.DueDate)),
			}), p.ID)
		}

		changed, err := u.payments.MarkOverdue(ctx, p.ID)
		if err != nil {
			u.logger.Error("[sweep][usecase] mark overdue failed", zap.String("payment_id", p.ID), zap.Error(err))
			continue
		}
		if changed {
			res.Transitioned++
		}
	}
	u.logDone(res)
	return res, nil
}

// LeaseExpiring looks at signed agreements ending within the notice window and
// notifies only on the day exactly leaseNoticeDays remain, so each lease gets
// one notice rather than one per day.
func (u *SweepUseCase) LeaseExpiring(ctx context.Context) (SweepResult, error) {
	res := SweepResult{Sweep: SweepLeaseExpiring}
	today := entities.DateOf(u.now())

	candidates, err := u.agreements.ListByStatusLeaseEndOnOrBefore(ctx, entities.AgreementStatusSigned, today.AddDate(0, 0, leaseNoticeDays))
	if err != nil {
		return res, err
	}
	contacts := newContactCache(u.tenants, u.apartments)
	for _, a := range candidates {
		res.Processed++
		days := entities.DaysBetween(today, a.LeaseEnd)
		if days != leaseNoticeDays {
			continue
		}
		c, ok := contacts.lookup(ctx, u.logger, a.TenantID, "")
		if !ok {
			continue
		}
		u.record(&res, u.notifier.Notify(ctx, interfaces.Notification{
			To:       c.recipient(),
			Subject:  fmt.Sprintf("Lease Expiration Notice (%d Days) - %s", leaseNoticeDays, u.settings.BrandName),
			Template: interfaces.TemplateLeaseExpiring,
			Data: map[string]any{
				"Name":          c.tenant.GreetingName(),
				"Brand":         u.settings.BrandName,
				"Unit":          c.unit,
				"LeaseEnd":      longDate(a.LeaseEnd),
				"DaysRemaining": days,
				"Link":          u.settings.url("/tenant"),
			},
			SMS: fmt.Sprintf("%s: your lease for %s expires in %d days on %s. Please contact management about renewal.",
				u.settings.BrandName, c.unit, days, longDate(a.LeaseEnd)),
		}), a.ID)
	}
	u.logDone(res)
	return res, nil
}

func (u *SweepUseCase) paymentData(c sweepContact, p entities.Payment, overdue bool) map[string]any {
	return map[string]any{
		"Name":    c.tenant.GreetingName(),
		"Brand":   u.settings.BrandName,
		"Label":   p.Type.Label(),
		"Amount":  u.settings.money(p.Amount),
		"Unit":    c.unit,
		"DueDate": longDate(p.DueDate),
		"Overdue": overdue,
		"Link":    u.settings.url("/tenant/payments"),
	}
}

func (u *SweepUseCase) record(res *SweepResult, n interfaces.NotificationResult, subjectID string) {
	if n.Failed() {
		res.Failed++
		u.logger.Warn("[sweep][usecase] notification failed",
			zap.String("sweep", res.Sweep),
			zap.String("subject_id", subjectID),
			zap.Strings("errors", n.Errors),
		)
		return
	}
	res.Notified++
}

func (u *SweepUseCase) logDone(res SweepResult) {
	u.logger.Info("[sweep][usecase] done",
		zap.String("sweep", res.Sweep),
		zap.Int("processed", res.Processed),
		zap.Int("notified", res.Notified),
		zap.Int("failed", res.Failed),
		zap.Int("transitioned", res.Transitioned),
	)
}

type sweepContact struct {
	tenant entities.Tenant
	unit   string
}

func (c sweepContact) recipient() entities.Recipient {
	return entities.Recipient{Email: c.tenant.Email, Phone: c.tenant.Phone}
}

// contactCache memoizes tenant and unit lookups within one sweep run.
type contactCache struct {
	tenants    interfaces.ITenantRepository
	apartments interfaces.IApartmentRepository
	seen       map[string]*sweepContact
}

func newContactCache(tenants interfaces.ITenantRepository, apartments interfaces.IApartmentRepository) *contactCache {
	return &contactCache{tenants: tenants, apartments: apartments, seen: map[string]*sweepContact{}}
}

// lookup resolves the tenant and unit name of a record. ok is false when the
// tenant cannot be reached by email.
func (c *contactCache) lookup(ctx context.Context, logger *zap.Logger, tenantID, apartmentID string) (sweepContact, bool) {
	key := tenantID + "|" + apartmentID
	if hit, ok := c.seen[key]; ok {
		if hit == nil {
			return sweepContact{}, false
		}
		return *hit, true
	}

	t, err := c.tenants.GetByID(ctx, tenantID)
	if err != nil {
		logger.Warn("[sweep][usecase] tenant lookup failed", zap.String("tenant_id", tenantID), zap.Error(err))
		c.seen[key] = nil
		return sweepContact{}, false
	}
	if t.ID == "" || t.Email == "" {
		c.seen[key] = nil
		return sweepContact{}, false
	}

	if apartmentID == "" {
		apartmentID = t.ApartmentID
	}
	unit := entities.Apartment{}.DisplayName()
	if apartmentID != "" {
		apt, err := c.apartments.GetByID(ctx, apartmentID)
		if err != nil {
			logger.Warn("[sweep][usecase] apartment lookup failed", zap.String("apartment_id", apartmentID), zap.Error(err))
		} else if apt.ID != "" {
			unit = apt.DisplayName()
		}
	}

	hit := &sweepContact{tenant: t, unit: unit}
	c.seen[key] = hit
	return *hit, true
}
