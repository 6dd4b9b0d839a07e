package session

import (
	"context"
	"time"
)

// RevocationStore список отозванных токенов
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
