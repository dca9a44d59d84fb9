package auth

import (
	"context"
	"rental_portal/internal/domain/entities"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-32-characters!"

func session() entities.TenantSession {
	return entities.TenantSession{
		TenantID:       "tenant-1",
		ApartmentID:    "apt-1",
		RoomNumber:     "PIL-1A",
		MustChangePass: true,
		Role:           entities.RoleTenant,
	}
}

func TestTenantTokens_RoundTrip(t *testing.T) {
	tokens := NewTenantTokens(testSecret, 0)

	token, issued, err := tokens.Issue(session())
	require.NoError(t, err)
	require.NotEmpty(t, issued.TokenID)
	require.Equal(t, DefaultSessionTTL, issued.ExpiresAt.Sub(issued.IssuedAt))

	parsed, err := tokens.Parse(token)
	require.NoError(t, err)
	require.Equal(t, issued, parsed)
	require.True(t, parsed.MustChangePass)
}

func TestTenantTokens_Rejects(t *testing.T) {
	tokens := NewTenantTokens(testSecret, time.Hour)

	t.Run("expired", func(t *testing.T) {
		old := NewTenantTokens(testSecret, time.Hour)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := old.Issue(session())
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewTenantTokens("another-secret-entirely-32-chars!!", time.Hour).Issue(session())
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "a.b.c", strings.Repeat("x", 300)} {
			_, err := tokens.Parse(raw)
			require.ErrorIs(t, err, ErrInvalidToken, raw)
		}
	})

	t.Run("not yet valid", func(t *testing.T) {
		future := NewTenantTokens(testSecret, time.Hour)
		future.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
		token, _, err := future.Issue(session())
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, tenantClaims{
			TenantID: "tenant-1",
			Role:     entities.RoleTenant,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tenantClaims{
			TenantID: "tenant-1",
			Role:     entities.RoleTenant,
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasscodeHasher(t *testing.T) {
	h := NewPasscodeHasher(bcryptTestCost)

	t.Run("generate is six digits", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			p, err := h.Generate()
			require.NoError(t, err)
			require.Len(t, p, 6)
			require.NotEqual(t, byte('0'), p[0])
		}
	})

	t.Run("hash round trip", func(t *testing.T) {
		hash, err := h.Hash("482913")
		require.NoError(t, err)
		require.NotEqual(t, "482913", hash)
		require.True(t, h.Matches(hash, "482913"))
		require.False(t, h.Matches(hash, "482914"))
		require.False(t, h.Matches("", "482913"))
	})

	t.Run("cost out of range falls back", func(t *testing.T) {
		require.Equal(t, PasscodeCost, NewPasscodeHasher(0).cost)
		require.Equal(t, PasscodeCost, NewPasscodeHasher(99).cost)
	})
}

const bcryptTestCost = 4

func TestAdminTokens(t *testing.T) {
	admins := NewAdminTokens(testSecret, nil)
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		token, err := NewAdminToken(testSecret, "admin-1", "ops@example.com", jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		require.NoError(t, err)

		id, err := admins.CurrentAdmin(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, id)
		require.Equal(t, "admin-1", id.Subject)
		require.Equal(t, "ops@example.com", id.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := NewAdminToken(testSecret, "admin-1", "", jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		require.NoError(t, err)

		id, err := admins.CurrentAdmin(ctx, token)
		require.NoError(t, err)
		require.Nil(t, id)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewAdminToken("other-secret", "admin-1", "", jwt.RegisteredClaims{})
		require.NoError(t, err)

		id, err := admins.CurrentAdmin(ctx, token)
		require.NoError(t, err)
		require.Nil(t, id)
	})

	t.Run("no secret configured", func(t *testing.T) {
		token, err := NewAdminToken(testSecret, "admin-1", "", jwt.RegisteredClaims{})
		require.NoError(t, err)

		id, err := NewAdminTokens("", nil).CurrentAdmin(ctx, token)
		require.NoError(t, err)
		require.Nil(t, id)
	})
}

func TestRedisRevoker(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := NewRedisRevoker(rdb)
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	t.Run("already expired token is not stored", func(t *testing.T) {
		require.NoError(t, r.Revoke(ctx, "jti-2", time.Now().Add(-time.Second)))
		require.False(t, mr.Exists(revokedKeyPrefix+"jti-2"))
	})

	t.Run("redis down", func(t *testing.T) {
		mr.Close()
		_, err := r.IsRevoked(ctx, "jti-1")
		require.Error(t, err)
	})
}
