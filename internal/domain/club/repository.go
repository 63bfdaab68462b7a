package club

import "context"

// Repository exposes club operations against the league backend.
// Mutations require the caller's bearer token.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetDetails(ctx context.Context, clubID int64) (FullDetail, error)
	Create(ctx context.Context, token string, draft Draft) (Club, error)
	Update(ctx context.Context, token string, clubID int64, draft Draft) (Club, error)
}
