// Package auth issues and verifies the bearer tokens that identify API callers.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	// RoleUser is a chat user acting as buyer or seller; the subject is the numeric user id.
	RoleUser Role = "user"
	// RoleModerator is a dispute moderator; the subject is the moderator id.
	RoleModerator Role = "moderator"
	// RoleAdmin manages moderators and may act on any dispute.
	RoleAdmin Role = "admin"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrInvalidRole  = errors.New("invalid role")
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Subject string
	Role    Role
}

// UserID returns the chat user id of a user principal.
func (p Principal) UserID() (int64, bool) {
	if p.Role != RoleUser {
		return 0, false
	}
	id, err := strconv.ParseInt(p.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs an HS256 token for the subject, valid for the configured TTL.
func (m *TokenManager) Issue(subject string, role Role) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	if _, err := ParseRole(string(role)); err != nil {
		return "", time.Time{}, err
	}
	if role == RoleUser {
		if _, ok := (Principal{Subject: subject, Role: role}).UserID(); !ok {
			return "", time.Time{}, fmt.Errorf("%w: user subject must be a positive integer", ErrInvalidToken)
		}
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies the token signature and expiry and returns the caller it names.
func (m *TokenManager) Parse(token string) (Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return Principal{}, ErrInvalidToken
	}
	role, err := ParseRole(string(claims.Role))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return Principal{Subject: claims.Subject, Role: role}, nil
}
