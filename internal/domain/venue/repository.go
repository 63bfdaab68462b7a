package venue

import "context"

// Repository exposes venue reads. Venues are read-only reference data
// for the console.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
}
