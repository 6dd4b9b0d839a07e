// Package session issues and verifies signed session tokens.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed session token and its expiry
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Provider signs HS256 tokens carrying the user id and email.
// Signed-out tokens are kept in the revocation store until they expire.
type Provider struct {
	secret  []byte
	issuer  string
	ttl     time.Duration
	revoked RevocationStore
	now     func() time.Time
}

func NewProvider(secret, issuer string, ttl time.Duration, revoked RevocationStore) *Provider {
	return &Provider{
		secret:  []byte(secret),
		issuer:  issuer,
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
	}
}

// Issue creates a fresh token for identity
func (p *Provider) Issue(identity domain.Identity) (Token, error) {
	now := p.now()
	expiresAt := now.Add(p.ttl)

	c := claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.UserID,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(p.secret)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %v", ErrSign, err)
	}

	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Authenticate resolves a token into the identity it was issued for
func (p *Provider) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	c, err := p.parse(token)
	if err != nil {
		return domain.Identity{}, err
	}

	revoked, err := p.revoked.IsRevoked(ctx, c.ID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if revoked {
		return domain.Identity{}, ErrRevoked
	}

	return domain.Identity{UserID: c.Subject, Email: c.Email}, nil
}

// Revoke invalidates token for the rest of its lifetime.
// Invalid or expired tokens are ignored, there is nothing left to revoke.
func (p *Provider) Revoke(ctx context.Context, token string) error {
	c, err := p.parse(token)
	if errors.Is(err, ErrInvalidToken) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := p.revoked.Revoke(ctx, c.ID, c.ExpiresAt.Time); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (p *Provider) parse(token string) (*claims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" || c.ID == "" {
		return nil, ErrInvalidToken
	}
	return &c, nil
}
