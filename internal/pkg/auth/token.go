package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"pharmacy/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

const issuer = "pharmacy"

// Claims is the token payload. Subject is "admin" for the administrator
// and the courier ID for couriers.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens signs and parses HS256 bearer tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if len(secret) < 16 {
		return nil, errs.NewValueIsOutOfRangeError("jwt secret length", len(secret), 16, "unbounded")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, "1ns", "unbounded")
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for subject with role.
func (t *Tokens) Issue(subject string, role Role) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies the signature and expiry. Every failure matches
// errs.ErrUnauthorized.
func (t *Tokens) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
	}
	if claims.Role != RoleAdmin && claims.Role != RoleDelivery {
		return nil, fmt.Errorf("%w: unknown role %q", errs.ErrUnauthorized, claims.Role)
	}
	return claims, nil
}

// AdminCredentials is the single administrator account from configuration.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// Check compares the login against the configured account.
func (a AdminCredentials) Check(hasher BcryptHasher, username, password string) error {
	if a.Username == "" || a.PasswordHash == "" {
		return errors.Join(errs.ErrUnauthorized, errors.New("admin account is not configured"))
	}
	if subtle.ConstantTimeCompare([]byte(a.Username), []byte(username)) != 1 {
		return errs.ErrUnauthorized
	}
	return hasher.Compare(a.PasswordHash, password)
}
