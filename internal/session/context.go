package session

import (
	"context"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

type identityKey struct{}

// WithIdentity stores the signed-in identity in ctx
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext returns the identity stored by WithIdentity
func FromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok && identity.UserID != ""
}
