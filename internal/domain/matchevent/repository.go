package matchevent

import "context"

// Repository exposes match-event operations against the league
// backend. Events can only be appended or deleted, never updated.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Event, error)
	Create(ctx context.Context, token string, draft Draft) (Event, error)
	Delete(ctx context.Context, token string, eventID int64) error
}
