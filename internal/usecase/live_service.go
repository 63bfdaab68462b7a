package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc"

	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchevent"
	"github.com/renca-fc/league-console/internal/domain/player"
	"github.com/renca-fc/league-console/internal/session"
)

// LiveMatchService mediates every mutation of a match's event log and
// derives the authoritative score from it. The stored home/away score
// fields are treated as advisory while a match is under live control;
// finalize and reopen push the derived values back to the backend so
// event edits can never leave a stale scoreboard behind.
//
// The backend owns the log. After every successful write the session
// is rebuilt from a fresh read rather than patched locally, so edits
// made by another operator in the meantime are picked up instead of
// silently overwritten.
type LiveMatchService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	eventRepo  matchevent.Repository
	logger     *slog.Logger
}

func NewLiveMatchService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	eventRepo matchevent.Repository,
	logger *slog.Logger,
) *LiveMatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveMatchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		eventRepo:  eventRepo,
		logger:     logger,
	}
}

// LiveSession is a read-through snapshot of one match under control:
// the match record, both rosters, and the full event log.
type LiveSession struct {
	Match   match.Match
	Players []player.Player
	Events  []matchevent.Event
}

// HomeScore derives the home side's score from the event log.
func (v LiveSession) HomeScore() int {
	return matchevent.GoalCount(v.Events, v.teamByPlayer(), v.Match.HomeTeamID)
}

// AwayScore derives the away side's score from the event log.
func (v LiveSession) AwayScore() int {
	return matchevent.GoalCount(v.Events, v.teamByPlayer(), v.Match.AwayTeamID)
}

func (v LiveSession) teamByPlayer() map[int64]int64 {
	index := make(map[int64]int64, len(v.Players))
	for _, p := range v.Players {
		index[p.ID] = p.TeamID
	}
	return index
}

// Open loads a match-control session. Rosters and events are fetched
// concurrently; the original console fires both requests together.
func (s *LiveMatchService) Open(ctx context.Context, matchID int64) (LiveSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Open")
	defer span.End()

	if matchID <= 0 {
		return LiveSession{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return LiveSession{}, fmt.Errorf("get match: %w", err)
	}

	var (
		players    []player.Player
		events     []matchevent.Event
		playersErr error
		eventsErr  error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		players, playersErr = s.playerRepo.ListByMatch(ctx, matchID)
	})
	wg.Go(func() {
		events, eventsErr = s.eventRepo.ListByMatch(ctx, matchID)
	})
	wg.Wait()

	if playersErr != nil {
		return LiveSession{}, fmt.Errorf("list match players: %w", playersErr)
	}
	if eventsErr != nil {
		return LiveSession{}, fmt.Errorf("list match events: %w", eventsErr)
	}

	return LiveSession{Match: m, Players: players, Events: events}, nil
}

// AddEventInput carries operator input for one event. Minute is the
// raw form value: it is coerced through numeric parsing, with invalid
// input becoming 0 rather than rejecting the event.
type AddEventInput struct {
	MatchID   int64
	PlayerID  int64
	EventType string
	Minute    string
}

func (s *LiveMatchService) AddEvent(ctx context.Context, sess *session.Session, input AddEventInput) (LiveSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.AddEvent")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return LiveSession{}, err
	}
	if err := s.ensureMutable(ctx, input.MatchID); err != nil {
		return LiveSession{}, err
	}
	if input.PlayerID <= 0 {
		return LiveSession{}, fmt.Errorf("%w: a player must be selected", ErrInvalidInput)
	}
	if !matchevent.IsKnownType(input.EventType) {
		return LiveSession{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, input.EventType)
	}

	draft := matchevent.Draft{
		MatchID:   input.MatchID,
		PlayerID:  input.PlayerID,
		EventType: input.EventType,
		Minute:    matchevent.ParseMinute(input.Minute),
	}
	if _, err := s.eventRepo.Create(ctx, token, draft); err != nil {
		return LiveSession{}, fmt.Errorf("create match event: %w", err)
	}

	return s.Open(ctx, input.MatchID)
}

func (s *LiveMatchService) DeleteEvent(ctx context.Context, sess *session.Session, matchID, eventID int64) (LiveSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.DeleteEvent")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return LiveSession{}, err
	}
	if err := s.ensureMutable(ctx, matchID); err != nil {
		return LiveSession{}, err
	}
	if eventID <= 0 {
		return LiveSession{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if err := s.eventRepo.Delete(ctx, token, eventID); err != nil {
		return LiveSession{}, fmt.Errorf("delete match event: %w", err)
	}

	return s.Open(ctx, matchID)
}

// Finalize locks a match and pushes the event-log-derived score, never
// the stored one, alongside is_played=true.
func (s *LiveMatchService) Finalize(ctx context.Context, sess *session.Session, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Finalize")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return match.Match{}, err
	}

	view, err := s.Open(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if view.Match.IsPlayed {
		return match.Match{}, fmt.Errorf("%w: already finalized", ErrLockedMatch)
	}

	result := match.Result{
		HomeScore: view.HomeScore(),
		AwayScore: view.AwayScore(),
		IsPlayed:  true,
	}
	updated, err := s.matchRepo.UpdateResult(ctx, token, matchID, result)
	if err != nil {
		return match.Match{}, fmt.Errorf("finalize match: %w", err)
	}

	s.logger.InfoContext(ctx, "match finalized",
		"match_id", matchID,
		"home_score", result.HomeScore,
		"away_score", result.AwayScore,
		"operator", sess.Username(),
	)
	return updated, nil
}

// Reopen unlocks a finalized match for corrections. This is the
// privileged-operator escape hatch; callers are expected to confirm
// before invoking it, and every use is logged.
func (s *LiveMatchService) Reopen(ctx context.Context, sess *session.Session, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Reopen")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return match.Match{}, err
	}

	view, err := s.Open(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if !view.Match.IsPlayed {
		return match.Match{}, fmt.Errorf("%w: match is not finalized", ErrInvalidInput)
	}

	result := match.Result{
		HomeScore: view.HomeScore(),
		AwayScore: view.AwayScore(),
		IsPlayed:  false,
	}
	updated, err := s.matchRepo.UpdateResult(ctx, token, matchID, result)
	if err != nil {
		return match.Match{}, fmt.Errorf("reopen match: %w", err)
	}

	s.logger.WarnContext(ctx, "finalized match reopened for corrections",
		"match_id", matchID,
		"operator", sess.Username(),
	)
	return updated, nil
}

// ensureMutable re-reads the match and rejects event mutations on a
// finalized one. The fresh read matters: another operator may have
// finalized the match since this session last looked.
func (s *LiveMatchService) ensureMutable(ctx context.Context, matchID int64) error {
	if matchID <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if m.IsPlayed {
		return fmt.Errorf("%w: reopen it before editing events", ErrLockedMatch)
	}
	return nil
}
