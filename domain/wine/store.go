package wine

import (
	"context"

	"github.com/google/uuid"
)

// Store persists wines scoped to an owner. Every query filters by ownerID;
// no operation can observe or mutate another owner's rows.
type Store interface {
	// List returns the owner's wines, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]Wine, error)

	// Create persists a draft and returns the stored entity with its
	// server-assigned identity and creation time.
	Create(ctx context.Context, ownerID uuid.UUID, w Wine) (Wine, error)

	// Update replaces the mutable fields of the identified wine. Returns
	// ErrNotFound when no owned row matches, ErrWriteFailed otherwise on
	// rejection.
	Update(ctx context.Context, ownerID uuid.UUID, w Wine) (Wine, error)

	// Delete removes the identified wine. A missing row is success; only
	// transport or permission failures return an error.
	Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
}
