package usecase

import (
	"context"
	"fmt"

	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/session"
)

// MatchService handles match scheduling and removal. Live result and
// event entry is LiveMatchService's job.
type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

func (s *MatchService) Create(ctx context.Context, sess *session.Session, draft match.Draft) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return match.Match{}, err
	}
	if draft.CategoryID <= 0 {
		return match.Match{}, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if draft.HomeTeamID <= 0 || draft.AwayTeamID <= 0 {
		return match.Match{}, fmt.Errorf("%w: both teams must be selected", ErrInvalidInput)
	}
	if draft.HomeTeamID == draft.AwayTeamID {
		return match.Match{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	created, err := s.matchRepo.Create(ctx, token, draft)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

func (s *MatchService) Update(ctx context.Context, sess *session.Session, matchID int64, draft match.Draft) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return match.Match{}, err
	}
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	updated, err := s.matchRepo.Update(ctx, token, matchID, draft)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, sess *session.Session, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return err
	}
	if matchID <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := s.matchRepo.Delete(ctx, token, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}
