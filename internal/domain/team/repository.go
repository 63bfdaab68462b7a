package team

import "context"

// Repository exposes team operations against the league backend.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID int64) ([]Team, error)
	Create(ctx context.Context, token string, clubID, categoryID int64) (Team, error)
}
