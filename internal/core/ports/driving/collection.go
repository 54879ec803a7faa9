package driving

import (
	"context"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
)

// CollectionService manages the ordered list of collection sources.
//
// Calls made on one instance run one at a time in submission order.
// Each call is a full transaction under an exclusive cross-process lock.
type CollectionService interface {
	// List returns every source in stored order.
	// A missing or empty storage file yields an empty list.
	List(ctx context.Context) ([]domain.CollectionSource, error)

	// Add removes any source equal to source, then inserts it at order.
	// A nil order, or one outside [0, count], appends at the end.
	Add(ctx context.Context, source domain.CollectionSource, order *int) error

	// Remove deletes the source equal to source. Absent sources are a no-op.
	Remove(ctx context.Context, source domain.CollectionSource) error

	// Move repositions source to index to, clamped the same way as Add.
	Move(ctx context.Context, source domain.CollectionSource, to int) error

	// Exists reports whether a source equal to source is stored.
	Exists(ctx context.Context, source domain.CollectionSource) (bool, error)

	// Path returns the storage file path.
	Path() string
}
