package wine

import (
	"context"

	"github.com/google/uuid"
)

// OwnerResolver yields the authenticated owner for the current call. The
// second return is false when no owner can be resolved, which callers map to
// ErrUnauthenticated.
type OwnerResolver interface {
	CurrentOwner(ctx context.Context) (uuid.UUID, bool)
}
