package usecase

import (
	"context"
	"errors"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidLoginInput  = errors.New("room number and passcode are required")
	ErrNoActiveTenant     = errors.New("no active tenant associated with this room")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidPasscode    = errors.New("passcode must be between 6 and 72 characters")
)

const (
	minPasscodeLen = 6
	// bcrypt ignores input past 72 bytes.
	maxPasscodeLen = 72
)

// TenantLogin is a freshly issued session and its signed token.
type TenantLogin struct {
	Session entities.TenantSession
	Token   string
}

// ITenantAuthUseCase is the room-number + passcode login of tenants.
//
// Verify never explains a rejection: expired, forged and malformed tokens
// all come back as nil.
type ITenantAuthUseCase interface {
	Login(ctx context.Context, roomNumber, passcode string) (TenantLogin, error)
	Verify(ctx context.Context, token string) *entities.TenantSession
	ChangePasscode(ctx context.Context, token, newPasscode string) (TenantLogin, error)
	Logout(ctx context.Context, token string) error
}

type TenantAuthUseCase struct {
	apartments interfaces.IApartmentRepository
	tenants    interfaces.ITenantRepository
	hasher     interfaces.ICredentialHasher
	tokens     interfaces.ITokenIssuer
	revoker    interfaces.ISessionRevoker
	logger     *zap.Logger
}

var _ ITenantAuthUseCase = (*TenantAuthUseCase)(nil)

// NewTenantAuthUseCase wires the tenant login. revoker may be nil, in which case
// tokens stay valid until they expire even after logout.
func NewTenantAuthUseCase(
	apartments interfaces.IApartmentRepository,
	tenants interfaces.ITenantRepository,
	hasher interfaces.ICredentialHasher,
	tokens interfaces.ITokenIssuer,
	revoker interfaces.ISessionRevoker,
	logger *zap.Logger,
) *TenantAuthUseCase {
	return &TenantAuthUseCase{
		apartments: apartments,
		tenants:    tenants,
		hasher:     hasher,
		tokens:     tokens,
		revoker:    revoker,
		logger:     orNop(logger),
	}
}

func (u *TenantAuthUseCase) Login(ctx context.Context, roomNumber, passcode string) (TenantLogin, error) {
	roomNumber = strings.ToUpper(strings.TrimSpace(roomNumber))
	if roomNumber == "" || passcode == "" {
		return TenantLogin{}, ErrInvalidLoginInput
	}

	apt, err := u.apartments.GetByRoomNumber(ctx, roomNumber)
	if err != nil {
		return TenantLogin{}, err
	}
	if apt.ID == "" {
		u.logger.Info("[auth][usecase] login unknown room", zap.String("room_number", roomNumber))
		return TenantLogin{}, ErrApartmentNotFound
	}

	tenant, err := u.tenants.GetActiveByApartmentID(ctx, apt.ID)
	if err != nil {
		return TenantLogin{}, err
	}
	if tenant.ID == "" {
		u.logger.Info("[auth][usecase] login room without active tenant", zap.String("apartment_id", apt.ID))
		return TenantLogin{}, ErrNoActiveTenant
	}

	if !u.hasher.Matches(tenant.PasscodeHash, passcode) {
		u.logger.Info("[auth][usecase] login passcode mismatch", zap.String("tenant_id", tenant.ID))
		return TenantLogin{}, ErrInvalidCredentials
	}

	token, session, err := u.tokens.Issue(entities.TenantSession{
		TenantID:       tenant.ID,
		ApartmentID:    apt.ID,
		RoomNumber:     apt.RoomNumber,
		MustChangePass: tenant.MustChangePass,
		Role:           entities.RoleTenant,
	})
	if err != nil {
		return TenantLogin{}, err
	}
	u.logger.Info("[auth][usecase] login success",
		zap.String("tenant_id", tenant.ID),
		zap.Bool("must_change_pass", tenant.MustChangePass),
	)
	return TenantLogin{Session: session, Token: token}, nil
}

func (u *TenantAuthUseCase) Verify(ctx context.Context, token string) *entities.TenantSession {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	session, err := u.tokens.Parse(token)
	if err != nil || session.TenantID == "" || session.Role != entities.RoleTenant {
		return nil
	}
	if u.revoker != nil && session.TokenID != "" {
		revoked, err := u.revoker.IsRevoked(ctx, session.TokenID)
		if err != nil {
			u.logger.Warn("[auth][usecase] revocation lookup failed", zap.Error(err))
			return nil
		}
		if revoked {
			return nil
		}
	}
	return &session
}

func (u *TenantAuthUseCase) ChangePasscode(ctx context.Context, token, newPasscode string) (TenantLogin, error) {
	session := u.Verify(ctx, token)
	if session == nil {
		return TenantLogin{}, ErrUnauthorized
	}
	if len(newPasscode) < minPasscodeLen || len(newPasscode) > maxPasscodeLen {
		return TenantLogin{}, ErrInvalidPasscode
	}

	hash, err := u.hasher.Hash(newPasscode)
	if err != nil {
		return TenantLogin{}, err
	}
	updated, err := u.tenants.UpdatePasscode(ctx, session.TenantID, hash, false)
	if err != nil {
		return TenantLogin{}, err
	}
	if updated.ID == "" {
		return TenantLogin{}, ErrUnauthorized
	}

	// The previous token stays valid until it expires; the caller replaces the cookie.
	fresh, issued, err := u.tokens.Issue(entities.TenantSession{
		TenantID:       session.TenantID,
		ApartmentID:    session.ApartmentID,
		RoomNumber:     session.RoomNumber,
		MustChangePass: false,
		Role:           entities.RoleTenant,
	})
	if err != nil {
		return TenantLogin{}, err
	}
	u.logger.Info("[auth][usecase] passcode changed", zap.String("tenant_id", session.TenantID))
	return TenantLogin{Session: issued, Token: fresh}, nil
}

func (u *TenantAuthUseCase) Logout(ctx context.Context, token string) error {
	if u.revoker == nil {
		return nil
	}
	session, err := u.tokens.Parse(strings.TrimSpace(token))
	if err != nil || session.TokenID == "" {
		return nil
	}
	if err := u.revoker.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		u.logger.Error("[auth][usecase] revoke failed", zap.String("tenant_id", session.TenantID), zap.Error(err))
		return err
	}
	return nil
}
