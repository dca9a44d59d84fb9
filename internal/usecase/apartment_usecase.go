package usecase

import (
	"context"
	"errors"
	"fmt"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrApartmentNotFound        = errors.New("apartment not found")
	ErrInvalidApartmentID       = errors.New("invalid apartment id")
	ErrInvalidApartmentInput    = errors.New("invalid apartment input")
	ErrRoomNumberTaken          = errors.New("room number already exists")
	ErrInvalidApartmentStatus   = errors.New("invalid apartment status transition")
	ErrApartmentStateConflict   = errors.New("apartment changed concurrently or still has a bound tenant")
	ErrApartmentRequiresAssign  = errors.New("apartments without a bound tenant become occupied only by assigning one")
	ErrApartmentArchiveViaRoute = errors.New("use the archive operation to archive an apartment")
)

// ApartmentInput is the admin-editable part of an apartment.
type ApartmentInput struct {
	UnitName    string
	UnitNumber  string
	Floor       int
	Type        entities.ApartmentType
	MonthlyRent decimal.Decimal
	Water       entities.Utility
	Sewage      entities.Utility
	Cleaning    entities.Utility
}

func (in ApartmentInput) validate() error {
	if strings.TrimSpace(in.UnitNumber) == "" || strings.TrimSpace(in.UnitName) == "" {
		return fmt.Errorf("%w: unit name and number are required", ErrInvalidApartmentInput)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidApartmentInput, in.Type)
	}
	if !in.MonthlyRent.IsPositive() {
		return fmt.Errorf("%w: monthly rent must be positive", ErrInvalidApartmentInput)
	}
	for _, u := range []entities.Utility{in.Water, in.Sewage, in.Cleaning} {
		if u.MonthlyRate.IsNegative() || u.AnnualRate.IsNegative() {
			return fmt.Errorf("%w: utility rates cannot be negative", ErrInvalidApartmentInput)
		}
	}
	return nil
}

// ApartmentCreated carries the one-time plaintext room passcode.
type ApartmentCreated struct {
	Apartment entities.Apartment
	Passcode  string
}

// IApartmentUseCase exposes apartment administration.
type IApartmentUseCase interface {
	Create(ctx context.Context, in ApartmentInput) (ApartmentCreated, error)
	GetByID(ctx context.Context, id string) (entities.Apartment, error)
	List(ctx context.Context, status entities.ApartmentStatus) ([]entities.Apartment, error)
	Update(ctx context.Context, id string, in ApartmentInput) (entities.Apartment, error)
	ChangeStatus(ctx context.Context, id string, status entities.ApartmentStatus) (entities.Apartment, error)
	Archive(ctx context.Context, id string) (entities.Apartment, error)
	Delete(ctx context.Context, id string) error
}

type ApartmentUseCase struct {
	repo       interfaces.IApartmentRepository
	hasher     interfaces.ICredentialHasher
	roomPrefix string
	logger     *zap.Logger
	now        func() time.Time
}

var _ IApartmentUseCase = (*ApartmentUseCase)(nil)

func NewApartmentUseCase(repo interfaces.IApartmentRepository, hasher interfaces.ICredentialHasher, roomPrefix string, logger *zap.Logger) *ApartmentUseCase {
	if roomPrefix == "" {
		roomPrefix = "PIL"
	}
	return &ApartmentUseCase{repo: repo, hasher: hasher, roomPrefix: roomPrefix, logger: orNop(logger), now: time.Now}
}

// RoomNumber builds the tenant login key, e.g. PIL-301 for floor 3 unit 01.
func RoomNumber(prefix string, floor int, unitNumber string) string {
	raw := fmt.Sprintf("%s-%d%s", prefix, floor, unitNumber)
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

func (u *ApartmentUseCase) Create(ctx context.Context, in ApartmentInput) (ApartmentCreated, error) {
	if err := in.validate(); err != nil {
		return ApartmentCreated{}, err
	}

	passcode, err := u.hasher.Generate()
	if err != nil {
		return ApartmentCreated{}, err
	}
	hash, err := u.hasher.Hash(passcode)
	if err != nil {
		return ApartmentCreated{}, err
	}

	now := u.now().UTC()
	a := entities.Apartment{
		ID:           uuid.NewString(),
		Status:       entities.ApartmentStatusVacant,
		RoomNumber:   RoomNumber(u.roomPrefix, in.Floor, strings.TrimSpace(in.UnitNumber)),
		PasscodeHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyApartmentInput(&a, in)

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return ApartmentCreated{}, ErrRoomNumberTaken
		}
		return ApartmentCreated{}, err
	}
	u.logger.Info("[apartment][usecase] created", zap.String("apartment_id", created.ID), zap.String("room_number", created.RoomNumber))
	return ApartmentCreated{Apartment: created, Passcode: passcode}, nil
}

func applyApartmentInput(a *entities.Apartment, in ApartmentInput) {
	a.UnitName = strings.TrimSpace(in.UnitName)
	a.UnitNumber = strings.TrimSpace(in.UnitNumber)
	a.Floor = in.Floor
	a.Type = in.Type
	a.MonthlyRent = in.MonthlyRent
	a.Water = in.Water
	a.Sewage = in.Sewage
	a.Cleaning = in.Cleaning
}

func (u *ApartmentUseCase) GetByID(ctx context.Context, id string) (entities.Apartment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Apartment{}, ErrInvalidApartmentID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Apartment{}, err
	}
	if a.ID == "" {
		return entities.Apartment{}, ErrApartmentNotFound
	}
	return a, nil
}

func (u *ApartmentUseCase) List(ctx context.Context, status entities.ApartmentStatus) ([]entities.Apartment, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidApartmentStatus
	}
	return u.repo.List(ctx, status)
}

// Update edits the descriptive and billing attributes. The room number stays
// fixed because it is the tenant's login key.
func (u *ApartmentUseCase) Update(ctx context.Context, id string, in ApartmentInput) (entities.Apartment, error) {
	if err := in.validate(); err != nil {
		return entities.Apartment{}, err
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Apartment{}, err
	}
	applyApartmentInput(&current, in)
	current.UpdatedAt = u.now().UTC()

	updated, err := u.repo.UpdateDetails(ctx, current)
	if err != nil {
		return entities.Apartment{}, err
	}
	if updated.ID == "" {
		return entities.Apartment{}, ErrApartmentNotFound
	}
	return updated, nil
}

// ChangeStatus moves an apartment along the transition table. OCCUPIED is
// only reachable here for a unit whose tenant is still bound, so a unit put
// under maintenance or archived while let can be handed back to its tenant.
func (u *ApartmentUseCase) ChangeStatus(ctx context.Context, id string, status entities.ApartmentStatus) (entities.Apartment, error) {
	if status == entities.ApartmentStatusArchived {
		return entities.Apartment{}, ErrApartmentArchiveViaRoute
	}
	if !status.Valid() {
		return entities.Apartment{}, ErrInvalidApartmentStatus
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Apartment{}, err
	}
	if status == entities.ApartmentStatusOccupied && current.OccupantTenantID == "" {
		return entities.Apartment{}, ErrApartmentRequiresAssign
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.Apartment{}, fmt.Errorf("%w: %s -> %s", ErrInvalidApartmentStatus, current.Status, status)
	}
	return u.updateStatus(ctx, current, status)
}

// Archive is a soft removal and is allowed whatever the occupancy.
func (u *ApartmentUseCase) Archive(ctx context.Context, id string) (entities.Apartment, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Apartment{}, err
	}
	if current.Status == entities.ApartmentStatusArchived {
		return current, nil
	}
	return u.updateStatus(ctx, current, entities.ApartmentStatusArchived)
}

func (u *ApartmentUseCase) updateStatus(ctx context.Context, current entities.Apartment, next entities.ApartmentStatus) (entities.Apartment, error) {
	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, next)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Apartment{}, ErrApartmentStateConflict
		}
		return entities.Apartment{}, err
	}
	if updated.ID == "" {
		return entities.Apartment{}, ErrApartmentNotFound
	}
	u.logger.Info("[apartment][usecase] status changed",
		zap.String("apartment_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}

// Delete is a hard removal. Tenants referencing the apartment are left as they are.
func (u *ApartmentUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, current.ID); err != nil {
		return err
	}
	u.logger.Info("[apartment][usecase] deleted", zap.String("apartment_id", current.ID))
	return nil
}
