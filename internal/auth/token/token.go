// Package token signs and verifies the admin JWTs.
package token

import (
	"errors"
	"fmt"
	"time"

	autherrors "go-outtime/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Claims struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Subject is who a token is issued for.
type Subject struct {
	UserID    string
	CompanyID string
	Role      string
}

type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Issuer struct {
	cfg Config
	now func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &Issuer{cfg: cfg, now: time.Now}
}

func (i *Issuer) AccessTTL() time.Duration  { return i.cfg.AccessTTL }
func (i *Issuer) RefreshTTL() time.Duration { return i.cfg.RefreshTTL }

func (i *Issuer) Issue(s Subject, tokenType string) (string, error) {
	ttl := i.cfg.AccessTTL
	if tokenType == TypeRefresh {
		ttl = i.cfg.RefreshTTL
	}
	now := i.now()
	claims := Claims{
		UserID:    s.UserID,
		CompanyID: s.CompanyID,
		Role:      s.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.Secret))
}

func (i *Issuer) Pair(s Subject) (access, refresh string, err error) {
	if access, err = i.Issue(s, TypeAccess); err != nil {
		return "", "", err
	}
	if refresh, err = i.Issue(s, TypeRefresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (i *Issuer) Parse(raw, tokenType string) (*Claims, error) {
	return Parse(i.cfg.Secret, raw, tokenType)
}

// Parse verifies signature, expiry and token type.
func Parse(secret, raw, tokenType string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, autherrors.ErrTokenExpired
	}
	if err != nil || !tok.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	if claims.TokenType != tokenType || claims.UserID == "" || claims.CompanyID == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
