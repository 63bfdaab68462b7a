package standings

import "context"

// Repository exposes the backend's derived tables. All reads; the
// console never computes standings itself.
type Repository interface {
	Leaderboard(ctx context.Context, categoryID int64, series string) ([]Row, error)
	// AdultLeaderboard aggregates every adult category for one series.
	AdultLeaderboard(ctx context.Context, series string) ([]Row, error)
	// TopScorers accepts a numeric category id or AdultAggregateRef.
	TopScorers(ctx context.Context, categoryRef string, series string) ([]Scorer, error)
}
