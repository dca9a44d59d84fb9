package auth

import (
	"context"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type adminClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AdminTokens trusts HS256 tokens minted by the external identity provider
// that shares ADMIN_JWT_SECRET with us. Any valid token is an admin.
type AdminTokens struct {
	secret []byte
	logger *zap.Logger
}

var _ interfaces.IAdminIdentity = (*AdminTokens)(nil)

func NewAdminTokens(secret string, logger *zap.Logger) *AdminTokens {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminTokens{secret: []byte(secret), logger: logger}
}

func (a *AdminTokens) CurrentAdmin(_ context.Context, bearerToken string) (*entities.AdminIdentity, error) {
	bearerToken = strings.TrimSpace(bearerToken)
	if bearerToken == "" || len(a.secret) == 0 {
		return nil, nil
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(bearerToken, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		a.logger.Debug("[auth][admin] token rejected", zap.Error(err))
		return nil, nil
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.Email
	}
	if subject == "" {
		return nil, nil
	}
	return &entities.AdminIdentity{Subject: subject, Email: claims.Email}, nil
}

// NewAdminToken mints an admin token, for local tooling and tests.
func NewAdminToken(secret, subject, email string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = subject
	return jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{Email: email, RegisteredClaims: claims}).SignedString([]byte(secret))
}
