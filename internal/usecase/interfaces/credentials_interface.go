package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
	"time"
)

// ICredentialHasher generates and one-way hashes tenant passcodes.
type ICredentialHasher interface {
	Generate() (string, error)
	Hash(passcode string) (string, error)
	// Matches compares in constant time.
	Matches(hash, passcode string) bool
}

// ITokenIssuer signs and verifies tenant session tokens.
type ITokenIssuer interface {
	Issue(s entities.TenantSession) (string, entities.TenantSession, error)
	Parse(token string) (entities.TenantSession, error)
}

// ISessionRevoker keeps logged-out token ids until they would have expired anyway.
type ISessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// IAdminIdentity resolves the caller of an admin request. A nil identity with a
// nil error means "not an admin".
type IAdminIdentity interface {
	CurrentAdmin(ctx context.Context, bearerToken string) (*entities.AdminIdentity, error)
}
