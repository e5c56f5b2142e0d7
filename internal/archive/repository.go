package archive

import "context"

// Repository stores finalized orders.
type Repository interface {
	Save(ctx context.Context, r *Record) error
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
