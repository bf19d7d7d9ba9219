package port

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository resolves client display names for report labels.
type ClientRepository interface {
	// GetNames returns a name per requested id. Ids with no matching client
	// are simply absent from the map; callers substitute a placeholder.
	GetNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
