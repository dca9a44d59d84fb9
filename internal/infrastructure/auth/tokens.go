package auth

import (
	"errors"
	"fmt"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is the lifetime of a tenant session token and its cookie.
const DefaultSessionTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid tenant token")

type tenantClaims struct {
	TenantID       string `json:"tenant_id"`
	ApartmentID    string `json:"apartment_id"`
	RoomNumber     string `json:"room_number"`
	MustChangePass bool   `json:"must_change_pass"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// TenantTokens signs tenant sessions as HS256 JWTs.
type TenantTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*TenantTokens)(nil)

func NewTenantTokens(secret string, ttl time.Duration) *TenantTokens {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &TenantTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue stamps iat and nbf with the current second, exp with iat+ttl and a
// random jti, and returns the session as the token carries it.
func (t *TenantTokens) Issue(s entities.TenantSession) (string, entities.TenantSession, error) {
	now := t.now().UTC().Truncate(time.Second)
	s.TokenID = uuid.NewString()
	s.IssuedAt = now
	s.ExpiresAt = now.Add(t.ttl)

	claims := tenantClaims{
		TenantID:       s.TenantID,
		ApartmentID:    s.ApartmentID,
		RoomNumber:     s.RoomNumber,
		MustChangePass: s.MustChangePass,
		Role:           s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.TokenID,
			Subject:   s.TenantID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", entities.TenantSession{}, fmt.Errorf("sign tenant token: %w", err)
	}
	return signed, s, nil
}

func (t *TenantTokens) Parse(token string) (entities.TenantSession, error) {
	claims := &tenantClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return entities.TenantSession{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return entities.TenantSession{}, ErrInvalidToken
	}

	s := entities.TenantSession{
		TenantID:       claims.TenantID,
		ApartmentID:    claims.ApartmentID,
		RoomNumber:     claims.RoomNumber,
		MustChangePass: claims.MustChangePass,
		Role:           claims.Role,
		TokenID:        claims.ID,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return s, nil
}
