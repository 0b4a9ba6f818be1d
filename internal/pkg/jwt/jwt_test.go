//go:build unit

package jwt

import (
	"testing"
	"time"

	"deal-marketplace/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleOwner)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	svc := NewService("secret", time.Hour)
	id := uuid.New()

	expired, err := svc.generateAt(id, user.RoleCustomer, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherKey, err := NewService("other", time.Hour).GenerateToken(id, user.RoleCustomer)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: id, Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	anonymous, err := svc.GenerateToken(uuid.Nil, user.RoleCustomer)
	require.NoError(t, err)

	cases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired", expired, ErrExpiredToken},
		{"wrong key", otherKey, ErrInvalidToken},
		{"alg none", noneAlg, ErrInvalidToken},
		{"garbage", "not-a-token", ErrInvalidToken},
		{"nil subject", anonymous, ErrInvalidToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
