package auth

import (
	"testing"
	"time"

	"pharmacy/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, h.Compare(hash, "s3cret-pass"))
	require.ErrorIs(t, h.Compare(hash, "wrong"), errs.ErrUnauthorized)
	assert.ErrorIs(t, h.Compare("not-a-hash", "wrong"), errs.ErrUnauthorized)
}

func TestNewBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	assert.Equal(t, 10, NewBcryptHasher(0).cost)
}

func TestTokens_IssueAndParse(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	require.NoError(t, err)
	tokens.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	raw, expires, err := tokens.Issue("7", RoleDelivery)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), expires)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, RoleDelivery, claims.Role)
}

func TestTokens_Parse_Rejects(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	require.NoError(t, err)
	issuedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issuedAt }
	valid, _, err := tokens.Issue("admin", RoleAdmin)
	require.NoError(t, err)

	other, _ := NewTokens("another-secret-of-length", time.Hour)
	foreign, _, _ := other.Issue("admin", RoleAdmin)

	unknownRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             "root",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, Subject: "x"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role:             RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		now  time.Time
	}{
		{"garbage", "not-a-token", issuedAt},
		{"expired", valid, issuedAt.Add(2 * time.Hour)},
		{"wrong secret", foreign, issuedAt},
		{"unknown role", unknownRole, issuedAt},
		{"alg none", none, issuedAt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens.now = func() time.Time { return tt.now }
			_, err := tokens.Parse(tt.raw)
			assert.ErrorIs(t, err, errs.ErrUnauthorized)
		})
	}
}

func TestNewTokens_Validation(t *testing.T) {
	_, err := NewTokens("short", time.Hour)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = NewTokens(testSecret, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAdminCredentials_Check(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("admin-pass")
	require.NoError(t, err)
	admin := AdminCredentials{Username: "admin", PasswordHash: hash}

	require.NoError(t, admin.Check(h, "admin", "admin-pass"))
	require.ErrorIs(t, admin.Check(h, "root", "admin-pass"), errs.ErrUnauthorized)
	require.ErrorIs(t, admin.Check(h, "admin", "nope"), errs.ErrUnauthorized)
	assert.ErrorIs(t, AdminCredentials{}.Check(h, "", ""), errs.ErrUnauthorized)
}
