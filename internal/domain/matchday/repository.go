package matchday

import "context"

// Repository exposes match-day operations against the league backend.
type Repository interface {
	List(ctx context.Context) ([]Day, error)
	Create(ctx context.Context, token string, draft Draft) (Day, error)
	Delete(ctx context.Context, token string, dayID int64) error
}
