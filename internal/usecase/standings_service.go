package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/renca-fc/league-console/internal/domain/club"
	"github.com/renca-fc/league-console/internal/domain/standings"
)

// StandingsService reads the backend's derived tables. The series
// filter is normalized here so callers can pass raw query values.
type StandingsService struct {
	standingsRepo standings.Repository
}

func NewStandingsService(standingsRepo standings.Repository) *StandingsService {
	return &StandingsService{standingsRepo: standingsRepo}
}

func (s *StandingsService) Leaderboard(ctx context.Context, categoryID int64, series string) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Leaderboard")
	defer span.End()

	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	rows, err := s.standingsRepo.Leaderboard(ctx, categoryID, club.NormalizeSeries(series))
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return rows, nil
}

// AdultLeaderboard aggregates every adult category for one series into
// a single table.
func (s *StandingsService) AdultLeaderboard(ctx context.Context, series string) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.AdultLeaderboard")
	defer span.End()

	rows, err := s.standingsRepo.AdultLeaderboard(ctx, club.NormalizeSeries(series))
	if err != nil {
		return nil, fmt.Errorf("adult leaderboard: %w", err)
	}
	return rows, nil
}

// TopScorers accepts a numeric category id or the adult-aggregate
// reference.
func (s *StandingsService) TopScorers(ctx context.Context, categoryRef string, series string) ([]standings.Scorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.TopScorers")
	defer span.End()

	categoryRef = strings.TrimSpace(categoryRef)
	if !strings.EqualFold(categoryRef, standings.AdultAggregateRef) {
		id, err := strconv.ParseInt(categoryRef, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
		}
	} else {
		categoryRef = standings.AdultAggregateRef
	}

	scorers, err := s.standingsRepo.TopScorers(ctx, categoryRef, club.NormalizeSeries(series))
	if err != nil {
		return nil, fmt.Errorf("top scorers: %w", err)
	}
	return scorers, nil
}
