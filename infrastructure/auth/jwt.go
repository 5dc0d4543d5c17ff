// Package auth resolves the authenticated owner from bearer tokens and
// carries it through the request context.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wijnkelder/cellar/domain/wine"
)

type contextKey string

const ownerKey contextKey = "owner_id"

// Verifier validates HS256 bearer tokens and extracts the owner UUID from
// the subject claim.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier with the given HMAC secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token, returning the owner UUID.
func (v *Verifier) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", wine.ErrUnauthenticated, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return uuid.Nil, fmt.Errorf("%w: token has no subject", wine.ErrUnauthenticated)
	}

	ownerID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a UUID", wine.ErrUnauthenticated)
	}
	return ownerID, nil
}

// Sign creates a token for an owner. Used by tests and local tooling.
func (v *Verifier) Sign(ownerID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": ownerID.String(),
	})
	return token.SignedString(v.secret)
}

// WithOwner returns a context carrying the authenticated owner.
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey, ownerID)
}

// OwnerFromContext extracts the authenticated owner from the context.
func OwnerFromContext(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(ownerKey).(uuid.UUID)
	return ownerID, ok && ownerID != uuid.Nil
}

// ContextResolver resolves the owner from the request context, as placed
// there by the HTTP auth middleware.
type ContextResolver struct{}

var _ wine.OwnerResolver = ContextResolver{}

// CurrentOwner implements wine.OwnerResolver.
func (ContextResolver) CurrentOwner(ctx context.Context) (uuid.UUID, bool) {
	return OwnerFromContext(ctx)
}

// StaticResolver always resolves to a fixed owner. Useful for single-user
// library embedding and tests.
type StaticResolver struct {
	ownerID uuid.UUID
}

var _ wine.OwnerResolver = StaticResolver{}

// NewStaticResolver creates a StaticResolver.
func NewStaticResolver(ownerID uuid.UUID) StaticResolver {
	return StaticResolver{ownerID: ownerID}
}

// CurrentOwner implements wine.OwnerResolver.
func (r StaticResolver) CurrentOwner(context.Context) (uuid.UUID, bool) {
	return r.ownerID, r.ownerID != uuid.Nil
}
