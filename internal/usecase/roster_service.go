package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/renca-fc/league-console/internal/domain/player"
	"github.com/renca-fc/league-console/internal/session"
)

// RosterService manages a team's player roster, including bulk
// enrollment from a spreadsheet.
type RosterService struct {
	playerRepo player.Repository
}

func NewRosterService(playerRepo player.Repository) *RosterService {
	return &RosterService{playerRepo: playerRepo}
}

func (s *RosterService) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListByTeam")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *RosterService) UpdatePlayer(ctx context.Context, sess *session.Session, playerID int64, update player.Update) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UpdatePlayer")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return player.Player{}, err
	}
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(update.Name) == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	update.DNI = player.NormalizeDNI(update.DNI)
	updated, err := s.playerRepo.Update(ctx, token, playerID, update)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return updated, nil
}

func (s *RosterService) DeletePlayer(ctx context.Context, sess *session.Session, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.DeletePlayer")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return err
	}
	if playerID <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := s.playerRepo.Delete(ctx, token, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

// UploadRoster forwards a spreadsheet to the backend. Only Excel files
// are accepted; the backend matches rows to existing players by DNI.
func (s *RosterService) UploadRoster(ctx context.Context, sess *session.Session, teamID int64, filename string, file io.Reader) (player.ImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UploadRoster")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return player.ImportSummary{}, err
	}
	if teamID <= 0 {
		return player.ImportSummary{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
	default:
		return player.ImportSummary{}, fmt.Errorf("%w: only .xlsx and .xls files are accepted", ErrInvalidInput)
	}
	if file == nil {
		return player.ImportSummary{}, fmt.Errorf("%w: a file is required", ErrInvalidInput)
	}

	summary, err := s.playerRepo.UploadRoster(ctx, token, teamID, filename, file)
	if err != nil {
		return player.ImportSummary{}, fmt.Errorf("upload roster: %w", err)
	}
	return summary, nil
}
