package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rental_portal/internal/adapter/persistence/memory"
	"rental_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// portal wires every usecase against one in-memory store and a shared clock.
type portal struct {
	apartments   *ApartmentUseCase
	tenants      *TenantUseCase
	agreements   *AgreementUseCase
	applications *ApplicationUseCase
	payments     *PaymentUseCase
	maintenance  *MaintenanceUseCase
	sweeps       *SweepUseCase
	notifier     *recordingNotifier

	paymentRepo   *memory.PaymentRepository
	agreementRepo *memory.AgreementRepository
	tenantRepo    *memory.TenantRepository
}

func newPortal(t *testing.T, now time.Time) *portal {
	t.Helper()
	store, err := memory.NewStore()
	require.NoError(t, err)

	apartmentRepo := memory.NewApartmentRepository(store)
	tenantRepo := memory.NewTenantRepository(store)
	agreementRepo := memory.NewAgreementRepository(store)
	applicationRepo := memory.NewApplicationRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)
	ticketRepo := memory.NewTicketRepository(store)

	n := &recordingNotifier{failFor: map[string]bool{}}
	hasher := &plainHasher{}
	settings := PortalSettings{}
	clock := fixedClock(now)

	p := &portal{
		apartments:    NewApartmentUseCase(apartmentRepo, hasher, "PIL", nil),
		tenants:       NewTenantUseCase(apartmentRepo, tenantRepo, agreementRepo, paymentRepo, ticketRepo, hasher, n, settings, nil),
		agreements:    NewAgreementUseCase(agreementRepo, tenantRepo, n, settings, nil),
		payments:      NewPaymentUseCase(paymentRepo, tenantRepo, apartmentRepo, nil),
		maintenance:   NewMaintenanceUseCase(ticketRepo, tenantRepo, n, settings, nil),
		sweeps:        NewSweepUseCase(paymentRepo, agreementRepo, tenantRepo, apartmentRepo, n, settings, nil),
		notifier:      n,
		paymentRepo:   paymentRepo,
		agreementRepo: agreementRepo,
		tenantRepo:    tenantRepo,
	}
	p.applications = NewApplicationUseCase(applicationRepo, tenantRepo, apartmentRepo, p.agreements, n, settings, nil)

	p.apartments.now = clock
	p.tenants.now = clock
	p.agreements.now = clock
	p.applications.now = clock
	p.payments.now = clock
	p.maintenance.now = clock
	p.sweeps.now = clock
	return p
}

func (p *portal) vacantApartment(t *testing.T, unit string, rent int64) entities.Apartment {
	t.Helper()
	created, err := p.apartments.Create(context.Background(), ApartmentInput{
		UnitName:    "Unit " + unit,
		UnitNumber:  unit,
		Floor:       1,
		Type:        entities.ApartmentTypeStudio,
		MonthlyRent: decimal.NewFromInt(rent),
		Water:       entities.Utility{Enabled: true, MonthlyRate: decimal.NewFromInt(25)},
		Cleaning:    entities.Utility{Enabled: true, MonthlyRate: decimal.NewFromInt(15)},
	})
	require.NoError(t, err)
	return created.Apartment
}

func (p *portal) tenantIn(t *testing.T, apt entities.Apartment, email string) TenantCredentials {
	t.Helper()
	creds, err := p.tenants.AssignApartment(context.Background(), apt.ID, ContactInfo{Email: email, Phone: "+233200000000"})
	require.NoError(t, err)
	return creds
}

var scenarioNow = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

func TestScenario_AssignApartment(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	apt := p.vacantApartment(t, "A", 1200)
	require.Equal(t, entities.ApartmentStatusVacant, apt.Status)

	creds := p.tenantIn(t, apt, "Ama@Example.com")
	require.True(t, creds.Tenant.MustChangePass)
	require.True(t, creds.Tenant.IsActive)
	require.False(t, creds.Tenant.OnboardingDone)
	require.Equal(t, "ama@example.com", creds.Tenant.Email)
	require.Len(t, creds.Passcode, 6)
	require.NotEqual(t, creds.Passcode, creds.Tenant.PasscodeHash)

	occupied, err := p.apartments.GetByID(ctx, apt.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ApartmentStatusOccupied, occupied.Status)

	_, err = p.tenants.AssignApartment(ctx, apt.ID, ContactInfo{Email: "kofi@example.com"})
	require.ErrorIs(t, err, ErrApartmentNotVacant)
}

func TestScenario_AssignRejectsMalformedEmail(t *testing.T) {
	p := newPortal(t, scenarioNow)
	apt := p.vacantApartment(t, "A", 1200)
	_, err := p.tenants.AssignApartment(context.Background(), apt.ID, ContactInfo{Email: "not an email"})
	require.ErrorIs(t, err, ErrInvalidContactInfo)
}

func TestScenario_ApplicationApproval(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	apt := p.vacantApartment(t, "B", 1200)
	creds := p.tenantIn(t, apt, "ama@example.com")

	app, err := p.applications.Submit(ctx, creds.Tenant.ID, entities.ApplicantFacts{FullName: "Ama Mensah", DeclarationAccurate: true})
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationStatusPending, app.Status)

	_, err = p.applications.Submit(ctx, creds.Tenant.ID, entities.ApplicantFacts{FullName: "Ama Mensah", DeclarationAccurate: true})
	require.ErrorIs(t, err, ErrApplicationPending)

	reviewed, err := p.applications.Review(ctx, app.ID, entities.ApplicationStatusApproved, "welcome")
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt)

	tenant, err := p.tenants.GetByID(ctx, creds.Tenant.ID)
	require.NoError(t, err)
	require.True(t, tenant.OnboardingDone)

	agreements, err := p.agreements.ListByTenantID(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, agreements, 1)
	a := agreements[0]
	require.Equal(t, entities.AgreementStatusDraft, a.Status)
	require.Equal(t, app.ID, a.ApplicationID)
	require.Equal(t, entities.DateOf(scenarioNow), a.LeaseStart)
	require.Equal(t, a.LeaseStart.AddDate(1, 0, 0), a.LeaseEnd)
	require.True(t, a.MonthlyRent.Equal(decimal.NewFromInt(1200)))
	require.True(t, a.SecurityDeposit.Equal(decimal.NewFromInt(2400)))
	require.False(t, a.TermsAccepted)

	require.Contains(t, p.notifier.subjects(), "Application Approved - PILAS Properties")

	_, err = p.applications.Review(ctx, app.ID, entities.ApplicationStatusRejected, "")
	require.ErrorIs(t, err, ErrApplicationAlreadyReviewed)
}

func TestScenario_ApplicationRejectionDraftsNothing(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "B", 900), "ama@example.com")

	app, err := p.applications.Submit(ctx, creds.Tenant.ID, entities.ApplicantFacts{FullName: "Ama Mensah", DeclarationAccurate: true})
	require.NoError(t, err)
	_, err = p.applications.Review(ctx, app.ID, entities.ApplicationStatusRejected, "incomplete references")
	require.NoError(t, err)

	agreements, err := p.agreements.ListByTenantID(ctx, creds.Tenant.ID)
	require.NoError(t, err)
	require.Empty(t, agreements)

	tenant, err := p.tenants.GetByID(ctx, creds.Tenant.ID)
	require.NoError(t, err)
	require.False(t, tenant.OnboardingDone)
	require.Contains(t, p.notifier.subjects(), "Application Rejected - PILAS Properties")
}

func TestScenario_OverdueSweep(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "C", 1200), "ama@example.com")

	payment, err := p.payments.Log(ctx, LogPaymentInput{
		TenantID: creds.Tenant.ID,
		Type:     entities.PaymentTypeRent,
		Amount:   decimal.NewFromInt(1200),
		DueDate:  scenarioNow.AddDate(0, 0, -1),
	})
	require.NoError(t, err)
	require.Equal(t, entities.PaymentStatusPending, payment.Status)

	res, err := p.sweeps.RentOverdue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Processed)
	require.Equal(t, 1, res.Notified)
	require.Equal(t, 1, res.Transitioned)

	got, err := p.payments.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	require.Equal(t, entities.PaymentStatusOverdue, got.Status)
	require.True(t, got.AmountPaid.IsZero())

	require.Len(t, p.notifier.sent, 1)
	require.Equal(t, "ama@example.com", p.notifier.sent[0].To.Email)
	require.Equal(t, "URGENT: OVERDUE PILAS Properties Rent", p.notifier.sent[0].Subject)

	again, err := p.sweeps.RentOverdue(ctx)
	require.NoError(t, err)
	require.Zero(t, again.Processed)
}

func TestScenario_OverdueSweepTransitionsDespiteFailedNotification(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "C", 1200), "ama@example.com")
	p.notifier.failFor["ama@example.com"] = true

	payment, err := p.payments.Log(ctx, LogPaymentInput{
		TenantID: creds.Tenant.ID,
		Type:     entities.PaymentTypeUtility,
		Amount:   decimal.NewFromInt(40),
		DueDate:  scenarioNow.AddDate(0, 0, -5),
	})
	require.NoError(t, err)

	res, err := p.sweeps.RentOverdue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Failed)
	require.Equal(t, 1, res.Transitioned)

	got, err := p.payments.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	require.Equal(t, entities.PaymentStatusOverdue, got.Status)
}

func TestScenario_RentDueSoonSweep(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "D", 1200), "ama@example.com")

	for _, offset := range []int{6, 7, 8} {
		_, err := p.payments.Log(ctx, LogPaymentInput{
			TenantID: creds.Tenant.ID,
			Type:     entities.PaymentTypeRent,
			Amount:   decimal.NewFromInt(1200),
			DueDate:  scenarioNow.AddDate(0, 0, offset),
		})
		require.NoError(t, err)
	}

	res, err := p.sweeps.RentDueSoon(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Processed)
	require.Equal(t, 1, res.Notified)
	require.Zero(t, res.Transitioned)
	require.Equal(t, "Reminder: Rent Due Soon - PILAS Properties", p.notifier.sent[0].Subject)
	require.Contains(t, p.notifier.sent[0].SMS, "GH₵ 1200.00")
}

func TestScenario_LeaseExpiryGate(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		days     int
		notified int
	}{
		{29, 0},
		{30, 1},
		{31, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d days left", tc.days), func(t *testing.T) {
			p := newPortal(t, scenarioNow)
			creds := p.tenantIn(t, p.vacantApartment(t, "E", 1000), "ama@example.com")
			today := entities.DateOf(scenarioNow)

			_, err := p.agreementRepo.Create(ctx, entities.Agreement{
				ID:          "ag-1",
				TenantID:    creds.Tenant.ID,
				LeaseStart:  today.AddDate(-1, 0, tc.days),
				LeaseEnd:    today.AddDate(0, 0, tc.days),
				MonthlyRent: decimal.NewFromInt(1000),
				Status:      entities.AgreementStatusSigned,
			})
			require.NoError(t, err)

			res, err := p.sweeps.LeaseExpiring(ctx)
			require.NoError(t, err)
			require.Equal(t, tc.notified, res.Notified)
			if tc.notified > 0 {
				require.Equal(t, "Lease Expiration Notice (30 Days) - PILAS Properties", p.notifier.sent[0].Subject)
			}
		})
	}
}

func TestScenario_SweepSkipsTenantsWithoutEmail(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds, err := p.tenants.AssignApartment(ctx, p.vacantApartment(t, "F", 800).ID, ContactInfo{Phone: "+233200000001"})
	require.NoError(t, err)

	_, err = p.payments.Log(ctx, LogPaymentInput{
		TenantID: creds.Tenant.ID,
		Type:     entities.PaymentTypeRent,
		Amount:   decimal.NewFromInt(800),
		DueDate:  scenarioNow.AddDate(0, 0, -2),
	})
	require.NoError(t, err)

	res, err := p.sweeps.RentOverdue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Processed)
	require.Zero(t, res.Notified)
	require.Equal(t, 1, res.Transitioned)
	require.Empty(t, p.notifier.sent)
}

func TestScenario_SignAndCountersign(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "G", 1000), "ama@example.com")

	a, err := p.agreements.Create(ctx, AgreementInput{
		TenantID:        creds.Tenant.ID,
		LeaseStart:      scenarioNow,
		LeaseEnd:        scenarioNow.AddDate(1, 0, 0),
		MonthlyRent:     decimal.NewFromInt(1000),
		SecurityDeposit: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	_, err = p.agreements.TenantSign(ctx, creds.Tenant.ID, a.ID, "https://cdn/sig.png")
	require.ErrorIs(t, err, ErrInvalidAgreementTransition)

	dispatched, err := p.agreements.DispatchForSignature(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AgreementStatusPendingSignature, dispatched.Status)
	require.Equal(t, "http://localhost:8080/tenant/agreements/"+a.ID, p.notifier.sent[0].Data["Link"])

	resent, err := p.agreements.DispatchForSignature(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AgreementStatusPendingSignature, resent.Status)

	_, err = p.agreements.TenantSign(ctx, "someone-else", a.ID, "https://cdn/sig.png")
	require.ErrorIs(t, err, ErrAgreementNotFound)

	signed, err := p.agreements.TenantSign(ctx, creds.Tenant.ID, a.ID, "https://cdn/sig.png")
	require.NoError(t, err)
	require.Equal(t, entities.AgreementStatusSigned, signed.Status)
	require.True(t, signed.TermsAccepted)
	require.NotNil(t, signed.SignedAt)

	active, err := p.agreements.AdminCountersign(ctx, a.ID, "https://cdn/admin.png")
	require.NoError(t, err)
	require.Equal(t, entities.AgreementStatusActive, active.Status)

	fetched, err := p.agreements.GetForTenant(ctx, creds.Tenant.ID, a.ID)
	require.NoError(t, err)
	require.Equal(t, "https://cdn/sig.png", fetched.TenantSignatureURL)
	require.Equal(t, "https://cdn/admin.png", fetched.AdminSignatureURL)
	require.NotNil(t, fetched.AdminSignedAt)

	_, err = p.agreements.AdminCountersign(ctx, a.ID, "https://cdn/admin.png")
	require.ErrorIs(t, err, ErrInvalidAgreementTransition)
}

func TestScenario_DispatchFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "H", 1000), "ama@example.com")
	p.notifier.failFor["ama@example.com"] = true

	a, err := p.agreements.Create(ctx, AgreementInput{
		TenantID:    creds.Tenant.ID,
		LeaseStart:  scenarioNow,
		LeaseEnd:    scenarioNow.AddDate(1, 0, 0),
		MonthlyRent: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	_, err = p.agreements.DispatchForSignature(ctx, a.ID)
	require.ErrorIs(t, err, ErrDispatchFailed)

	got, err := p.agreements.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AgreementStatusDraft, got.Status)
}

func TestScenario_MonthlyInvoicesAreIdempotent(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "I", 1000), "ama@example.com")
	inactive := p.tenantIn(t, p.vacantApartment(t, "J", 700), "kofi@example.com")
	_, err := p.tenants.Deactivate(ctx, inactive.Tenant.ID)
	require.NoError(t, err)

	run, err := p.payments.GenerateMonthlyInvoices(ctx)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), run.DueDate)
	require.Equal(t, 2, run.Created)
	require.Zero(t, run.Skipped)

	again, err := p.payments.GenerateMonthlyInvoices(ctx)
	require.NoError(t, err)
	require.Zero(t, again.Created)
	require.Equal(t, 2, again.Skipped)

	list, err := p.payments.ListByTenantID(ctx, creds.Tenant.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, inv := range list {
		switch inv.Type {
		case entities.PaymentTypeRent:
			require.True(t, inv.Amount.Equal(decimal.NewFromInt(1000)))
			require.Equal(t, "Rent for April 2026", inv.Notes)
		case entities.PaymentTypeUtility:
			require.True(t, inv.Amount.Equal(decimal.NewFromInt(40)))
			require.Equal(t, "Utilities (Water, Cleaning) for April 2026", inv.Notes)
		default:
			t.Fatalf("unexpected invoice type %s", inv.Type)
		}
	}

	none, err := p.payments.ListByTenantID(ctx, inactive.Tenant.ID)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestScenario_SettlePayment(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "K", 1000), "ama@example.com")

	logged, err := p.payments.Log(ctx, LogPaymentInput{
		TenantID: creds.Tenant.ID,
		Type:     entities.PaymentTypeDeposit,
		Amount:   decimal.NewFromInt(2000),
		DueDate:  scenarioNow,
		Status:   entities.PaymentStatusPaid,
	})
	require.NoError(t, err)
	require.Equal(t, entities.PaymentStatusPaid, logged.Status)
	require.Equal(t, entities.PaymentMethodManual, logged.Method)
	require.True(t, logged.AmountPaid.Equal(logged.Amount))

	pending, err := p.payments.Log(ctx, LogPaymentInput{
		TenantID: creds.Tenant.ID,
		Type:     entities.PaymentTypeRent,
		Amount:   decimal.NewFromInt(1000),
		DueDate:  scenarioNow,
	})
	require.NoError(t, err)

	settled, err := p.payments.Settle(ctx, pending.ID, "mobile money")
	require.NoError(t, err)
	require.Equal(t, entities.PaymentStatusPaid, settled.Status)
	require.Equal(t, "MOBILE MONEY", settled.Method)
	require.True(t, settled.AmountPaid.Equal(decimal.NewFromInt(1000)))
	require.NotNil(t, settled.PaidAt)
}

func TestScenario_MaintenanceTicketLifecycle(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "L", 1000), "ama@example.com")

	ticket, err := p.maintenance.Submit(ctx, creds.Tenant.ID, "Leaking tap", "Kitchen tap drips all night", "")
	require.NoError(t, err)
	require.Equal(t, entities.TicketStatusSubmitted, ticket.Status)
	require.Equal(t, entities.TicketPriorityMedium, ticket.Priority)

	updated, err := p.maintenance.UpdateStatus(ctx, ticket.ID, entities.TicketStatusInProgress)
	require.NoError(t, err)
	require.Equal(t, entities.TicketStatusInProgress, updated.Status)
	require.Contains(t, p.notifier.subjects(), "Maintenance Update: Leaking tap - PILAS Properties")

	_, err = p.maintenance.UpdateStatus(ctx, ticket.ID, entities.TicketStatusSubmitted)
	require.ErrorIs(t, err, ErrInvalidTicketTransition)

	_, err = p.maintenance.UpdateStatus(ctx, ticket.ID, entities.TicketStatusClosed)
	require.NoError(t, err)
	reopened, err := p.maintenance.UpdateStatus(ctx, ticket.ID, entities.TicketStatusInProgress)
	require.NoError(t, err)
	require.Equal(t, entities.TicketStatusInProgress, reopened.Status)
}

func TestScenario_DeactivateAndReactivate(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	apt := p.vacantApartment(t, "M", 1000)
	first := p.tenantIn(t, apt, "ama@example.com")

	_, err := p.tenants.Deactivate(ctx, first.Tenant.ID)
	require.NoError(t, err)
	vacant, err := p.apartments.GetByID(ctx, apt.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ApartmentStatusVacant, vacant.Status)

	p.tenantIn(t, apt, "kofi@example.com")
	_, err = p.tenants.Activate(ctx, first.Tenant.ID)
	require.ErrorIs(t, err, ErrApartmentTaken)
}

func TestScenario_OccupiedUnitReturnsFromMaintenance(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	apt := p.vacantApartment(t, "P", 1000)
	creds := p.tenantIn(t, apt, "ama@example.com")

	repairing, err := p.apartments.ChangeStatus(ctx, apt.ID, entities.ApartmentStatusMaintenance)
	require.NoError(t, err)
	require.Equal(t, entities.ApartmentStatusMaintenance, repairing.Status)

	_, err = p.apartments.ChangeStatus(ctx, apt.ID, entities.ApartmentStatusVacant)
	require.ErrorIs(t, err, ErrApartmentStateConflict)

	back, err := p.apartments.ChangeStatus(ctx, apt.ID, entities.ApartmentStatusOccupied)
	require.NoError(t, err)
	require.Equal(t, entities.ApartmentStatusOccupied, back.Status)
	require.Equal(t, creds.Tenant.ID, back.OccupantTenantID)

	_, err = p.apartments.Archive(ctx, apt.ID)
	require.NoError(t, err)
	restored, err := p.apartments.ChangeStatus(ctx, apt.ID, entities.ApartmentStatusOccupied)
	require.NoError(t, err)
	require.Equal(t, entities.ApartmentStatusOccupied, restored.Status)

	tenant, err := p.tenantRepo.GetByID(ctx, creds.Tenant.ID)
	require.NoError(t, err)
	require.True(t, tenant.IsActive)

	empty := p.vacantApartment(t, "Q", 1000)
	_, err = p.apartments.ChangeStatus(ctx, empty.ID, entities.ApartmentStatusMaintenance)
	require.NoError(t, err)
	_, err = p.apartments.ChangeStatus(ctx, empty.ID, entities.ApartmentStatusOccupied)
	require.ErrorIs(t, err, ErrApartmentRequiresAssign)
}

func TestScenario_ResetPasscode(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "N", 1000), "ama@example.com")
	_, err := p.tenantRepo.UpdatePasscode(ctx, creds.Tenant.ID, "hashed:999999", false)
	require.NoError(t, err)

	reset, err := p.tenants.ResetPasscode(ctx, creds.Tenant.ID)
	require.NoError(t, err)
	require.NotEqual(t, creds.Passcode, reset.Passcode)
	require.True(t, reset.Tenant.MustChangePass)
	require.Equal(t, "hashed:"+reset.Passcode, reset.Tenant.PasscodeHash)

	last := p.notifier.sent[len(p.notifier.sent)-1]
	require.Equal(t, "Your PILAS Properties Tenant Portal Credentials", last.Subject)
	require.Contains(t, last.SMS, reset.Passcode)
	require.Contains(t, last.SMS, "PIL-1N")
}

func TestScenario_Dashboard(t *testing.T) {
	ctx := context.Background()
	p := newPortal(t, scenarioNow)
	creds := p.tenantIn(t, p.vacantApartment(t, "O", 1000), "ama@example.com")

	for i := 0; i < 4; i++ {
		_, err := p.payments.Log(ctx, LogPaymentInput{
			TenantID: creds.Tenant.ID,
			Type:     entities.PaymentTypeRent,
			Amount:   decimal.NewFromInt(1000),
			DueDate:  scenarioNow.AddDate(0, i, 0),
		})
		require.NoError(t, err)
	}
	_, err := p.maintenance.Submit(ctx, creds.Tenant.ID, "Door", "Squeaks", entities.TicketPriorityLow)
	require.NoError(t, err)

	view, err := p.tenants.Dashboard(ctx, creds.Tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Apartment)
	require.Nil(t, view.Agreement)
	require.NotNil(t, view.NextPayment)
	require.Equal(t, entities.DateOf(scenarioNow), view.NextPayment.DueDate)
	require.Len(t, view.RecentPayments, 3)
	require.Len(t, view.RecentTickets, 1)
}
