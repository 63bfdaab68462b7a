package category

import "context"

// Repository exposes category reads. Categories are read-only
// reference data for the console.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
}
