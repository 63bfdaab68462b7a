package player

import (
	"context"
	"io"
)

// Repository exposes player operations against the league backend.
type Repository interface {
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	// ListByMatch returns the combined home and away rosters for a match.
	ListByMatch(ctx context.Context, matchID int64) ([]Player, error)
	Update(ctx context.Context, token string, playerID int64, update Update) (Player, error)
	Delete(ctx context.Context, token string, playerID int64) error
	// UploadRoster forwards a spreadsheet to the backend, which parses it
	// and upserts rows by DNI.
	UploadRoster(ctx context.Context, token string, teamID int64, filename string, file io.Reader) (ImportSummary, error)
}
