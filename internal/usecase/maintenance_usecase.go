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
	"go.uber.org/zap"
)

var (
	ErrTicketNotFound          = errors.New("maintenance ticket not found")
	ErrInvalidTicketID         = errors.New("invalid maintenance ticket id")
	ErrInvalidTicketInput      = errors.New("invalid maintenance ticket input")
	ErrInvalidTicketTransition = errors.New("invalid maintenance ticket status transition")
	ErrTicketStateConflict     = errors.New("maintenance ticket changed concurrently")
)

type IMaintenanceUseCase interface {
	Submit(ctx context.Context, tenantID, title, description string, priority entities.TicketPriority) (entities.MaintenanceTicket, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceTicket, error)
	List(ctx context.Context) ([]entities.MaintenanceTicket, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.MaintenanceTicket, error)
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.MaintenanceTicket, error)
}

type MaintenanceUseCase struct {
	repo     interfaces.ITicketRepository
	tenants  interfaces.ITenantRepository
	notifier interfaces.INotifier
	settings PortalSettings
	logger   *zap.Logger
	now      func() time.Time
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(
	repo interfaces.ITicketRepository,
	tenants interfaces.ITenantRepository,
	notifier interfaces.INotifier,
	settings PortalSettings,
	logger *zap.Logger,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{
		repo:     repo,
		tenants:  tenants,
		notifier: notifier,
		settings: settings.withDefaults(),
		logger:   orNop(logger),
		now:      time.Now,
	}
}

func (u *MaintenanceUseCase) Submit(ctx context.Context, tenantID, title, description string, priority entities.TicketPriority) (entities.MaintenanceTicket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return entities.MaintenanceTicket{}, fmt.Errorf("%w: title and description are required", ErrInvalidTicketInput)
	}
	if priority == "" {
		priority = entities.TicketPriorityMedium
	}
	if !priority.Valid() {
		return entities.MaintenanceTicket{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidTicketInput, priority)
	}

	tenant, err := u.tenants.GetByID(ctx, strings.TrimSpace(tenantID))
	if err != nil {
		return entities.MaintenanceTicket{}, err
	}
	if tenant.ID == "" {
		return entities.MaintenanceTicket{}, ErrTenantNotFound
	}
	if tenant.ApartmentID == "" {
		return entities.MaintenanceTicket{}, ErrTenantNoApartment
	}

	now := u.now().UTC()
	created, err := u.repo.Create(ctx, entities.MaintenanceTicket{
		ID:          uuid.NewString(),
		TenantID:    tenant.ID,
		ApartmentID: tenant.ApartmentID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      entities.TicketStatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return entities.MaintenanceTicket{}, err
	}
	u.logger.Info("[maintenance][usecase] submitted",
		zap.String("ticket_id", created.ID),
		zap.String("tenant_id", tenant.ID),
		zap.String("priority", string(priority)),
	)
	return created, nil
}

func (u *MaintenanceUseCase) GetByID(ctx context.Context, id string) (entities.MaintenanceTicket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceTicket{}, ErrInvalidTicketID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceTicket{}, err
	}
	if t.ID == "" {
		return entities.MaintenanceTicket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *MaintenanceUseCase) List(ctx context.Context) ([]entities.MaintenanceTicket, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortTickets(list)
	return list, nil
}

func (u *MaintenanceUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.MaintenanceTicket, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrInvalidTenantID
	}
	list, err := u.repo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	sortTickets(list)
	return list, nil
}

func sortTickets(list []entities.MaintenanceTicket) {
	slices.SortFunc(list, func(a, b entities.MaintenanceTicket) int { return b.CreatedAt.Compare(a.CreatedAt) })
}

// UpdateStatus moves a ticket along its transition table and tells the tenant.
func (u *MaintenanceUseCase) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.MaintenanceTicket, error) {
	if !status.Valid() {
		return entities.MaintenanceTicket{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTicketTransition, status)
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceTicket{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.MaintenanceTicket{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTicketTransition, current.Status, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, status)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.MaintenanceTicket{}, ErrTicketStateConflict
		}
		return entities.MaintenanceTicket{}, err
	}
	if updated.ID == "" {
		return entities.MaintenanceTicket{}, ErrTicketNotFound
	}
	u.logger.Info("[maintenance][usecase] status changed",
		zap.String("ticket_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)

	u.notifyStatus(ctx, updated)
	return updated, nil
}

func (u *MaintenanceUseCase) notifyStatus(ctx context.Context, t entities.MaintenanceTicket) {
	tenant, err := u.tenants.GetByID(ctx, t.TenantID)
	if err != nil || tenant.ID == "" {
		u.logger.Warn("[maintenance][usecase] tenant lookup for notification failed", zap.String("tenant_id", t.TenantID), zap.Error(err))
		return
	}
	res := u.notifier.Notify(ctx, interfaces.Notification{
		To:       tenant.Contact(),
		Subject:  fmt.Sprintf("Maintenance Update: %s - %s", t.Title, u.settings.BrandName),
		Template: interfaces.TemplateMaintenanceUpdate,
		Data: map[string]any{
			"Name":   tenant.GreetingName(),
			"Brand":  u.settings.BrandName,
			"Title":  t.Title,
			"Status": t.Status.Label(),
			"Link":   u.settings.url("/tenant/maintenance"),
		},
		SMS: fmt.Sprintf("%s: your maintenance request %q is now %s.", u.settings.BrandName, t.Title, t.Status.Label()),
	})
	if res.Failed() {
		u.logger.Warn("[maintenance][usecase] status notification failed", zap.String("ticket_id", t.ID), zap.Strings("errors", res.Errors))
	}
}
