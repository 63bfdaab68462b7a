package match

import "context"

// Repository exposes match operations against the league backend.
// Series filters only apply to adult categories; the backend ignores
// it elsewhere.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID int64, series string) ([]Match, error)
	Get(ctx context.Context, matchID int64) (Match, error)
	Create(ctx context.Context, token string, draft Draft) (Match, error)
	Update(ctx context.Context, token string, matchID int64, draft Draft) (Match, error)
	Delete(ctx context.Context, token string, matchID int64) error
	UpdateResult(ctx context.Context, token string, matchID int64, result Result) (Match, error)
}
