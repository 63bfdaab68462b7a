package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchevent"
	"github.com/renca-fc/league-console/internal/domain/player"
	"github.com/renca-fc/league-console/internal/domain/user"
	"github.com/renca-fc/league-console/internal/session"
)

type stubMatchRepo struct {
	match.Repository

	matches       map[int64]match.Match
	updateResults []match.Result
}

func (s *stubMatchRepo) Get(_ context.Context, matchID int64) (match.Match, error) {
	m, ok := s.matches[matchID]
	if !ok {
		return match.Match{}, ErrNotFound
	}
	return m, nil
}

func (s *stubMatchRepo) UpdateResult(_ context.Context, _ string, matchID int64, result match.Result) (match.Match, error) {
	m := s.matches[matchID]
	m.HomeScore = result.HomeScore
	m.AwayScore = result.AwayScore
	m.IsPlayed = result.IsPlayed
	s.matches[matchID] = m
	s.updateResults = append(s.updateResults, result)
	return m, nil
}

type stubPlayerRepo struct {
	player.Repository

	byMatch map[int64][]player.Player
}

func (s *stubPlayerRepo) ListByMatch(_ context.Context, matchID int64) ([]player.Player, error) {
	return s.byMatch[matchID], nil
}

type stubEventRepo struct {
	byMatch map[int64][]matchevent.Event
	nextID  int64
}

func (s *stubEventRepo) ListByMatch(_ context.Context, matchID int64) ([]matchevent.Event, error) {
	return s.byMatch[matchID], nil
}

func (s *stubEventRepo) Create(_ context.Context, _ string, draft matchevent.Draft) (matchevent.Event, error) {
	s.nextID++
	event := matchevent.Event{
		ID:        s.nextID,
		MatchID:   draft.MatchID,
		PlayerID:  draft.PlayerID,
		EventType: draft.EventType,
		Minute:    draft.Minute,
	}
	s.byMatch[draft.MatchID] = append(s.byMatch[draft.MatchID], event)
	return event, nil
}

func (s *stubEventRepo) Delete(_ context.Context, _ string, eventID int64) error {
	for matchID, events := range s.byMatch {
		for i, event := range events {
			if event.ID == eventID {
				s.byMatch[matchID] = append(events[:i:i], events[i+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

func operatorSession() *session.Session {
	return &session.Session{
		Token:     "test-token",
		Principal: user.Principal{Username: "arbitro"},
	}
}

func newLiveFixture() (*LiveMatchService, *stubMatchRepo, *stubEventRepo) {
	matchRepo := &stubMatchRepo{matches: map[int64]match.Match{
		7: {ID: 7, HomeTeamID: 10, AwayTeamID: 20, HomeScore: 1, AwayScore: 1},
	}}
	playerRepo := &stubPlayerRepo{byMatch: map[int64][]player.Player{
		7: {
			{ID: 100, TeamID: 10, Name: "Pedro Soto"},
			{ID: 101, TeamID: 10, Name: "Luis Vidal"},
			{ID: 200, TeamID: 20, Name: "Juan Rojas"},
		},
	}}
	eventRepo := &stubEventRepo{byMatch: map[int64][]matchevent.Event{7: nil}}
	return NewLiveMatchService(matchRepo, playerRepo, eventRepo, nil), matchRepo, eventRepo
}

func TestLiveSessionDerivesScoresFromEvents(t *testing.T) {
	svc, _, eventRepo := newLiveFixture()
	eventRepo.byMatch[7] = []matchevent.Event{
		{ID: 1, MatchID: 7, PlayerID: 100, EventType: matchevent.TypeGoal, Minute: 12},
		{ID: 2, MatchID: 7, PlayerID: 101, EventType: matchevent.TypeGoal, Minute: 34},
		{ID: 3, MatchID: 7, PlayerID: 200, EventType: matchevent.TypeGoal, Minute: 60},
		{ID: 4, MatchID: 7, PlayerID: 200, EventType: matchevent.TypeYellowCard, Minute: 61},
	}

	view, err := svc.Open(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, view.HomeScore())
	assert.Equal(t, 1, view.AwayScore())

	// Reloading without touching the log derives the same scores.
	again, err := svc.Open(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, view.HomeScore(), again.HomeScore())
	assert.Equal(t, view.AwayScore(), again.AwayScore())
}

func TestLiveAddEventRefreshesSession(t *testing.T) {
	svc, _, _ := newLiveFixture()

	view, err := svc.AddEvent(context.Background(), operatorSession(), AddEventInput{
		MatchID:   7,
		PlayerID:  100,
		EventType: matchevent.TypeGoal,
		Minute:    "18",
	})
	require.NoError(t, err)

	require.Len(t, view.Events, 1)
	assert.Equal(t, 18, view.Events[0].Minute)
	assert.Equal(t, 1, view.HomeScore())
	assert.Equal(t, 0, view.AwayScore())
}

func TestLiveAddEventCoercesInvalidMinute(t *testing.T) {
	svc, _, _ := newLiveFixture()

	view, err := svc.AddEvent(context.Background(), operatorSession(), AddEventInput{
		MatchID:   7,
		PlayerID:  200,
		EventType: matchevent.TypeRedCard,
		Minute:    "abc",
	})
	require.NoError(t, err)

	require.Len(t, view.Events, 1)
	assert.Equal(t, 0, view.Events[0].Minute)
}

func TestLiveAddEventRequiresPlayer(t *testing.T) {
	svc, _, _ := newLiveFixture()

	_, err := svc.AddEvent(context.Background(), operatorSession(), AddEventInput{
		MatchID:   7,
		EventType: matchevent.TypeGoal,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLiveMutationsRejectAnonymous(t *testing.T) {
	svc, _, _ := newLiveFixture()

	_, err := svc.AddEvent(context.Background(), nil, AddEventInput{
		MatchID:   7,
		PlayerID:  100,
		EventType: matchevent.TypeGoal,
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Finalize(context.Background(), nil, 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLiveFinalizePushesDerivedScore(t *testing.T) {
	svc, matchRepo, eventRepo := newLiveFixture()

	// Stored score says 1-1; the log says 2-0. Finalize must push the
	// derived values, never the stored ones.
	eventRepo.byMatch[7] = []matchevent.Event{
		{ID: 1, MatchID: 7, PlayerID: 100, EventType: matchevent.TypeGoal, Minute: 5},
		{ID: 2, MatchID: 7, PlayerID: 101, EventType: matchevent.TypeGoal, Minute: 80},
	}

	updated, err := svc.Finalize(context.Background(), operatorSession(), 7)
	require.NoError(t, err)

	assert.True(t, updated.IsPlayed)
	assert.Equal(t, 2, updated.HomeScore)
	assert.Equal(t, 0, updated.AwayScore)

	require.Len(t, matchRepo.updateResults, 1)
	assert.Equal(t, match.Result{HomeScore: 2, AwayScore: 0, IsPlayed: true}, matchRepo.updateResults[0])
}

func TestLiveFinalizedMatchIsLocked(t *testing.T) {
	svc, matchRepo, _ := newLiveFixture()

	_, err := svc.Finalize(context.Background(), operatorSession(), 7)
	require.NoError(t, err)

	_, err = svc.AddEvent(context.Background(), operatorSession(), AddEventInput{
		MatchID:   7,
		PlayerID:  100,
		EventType: matchevent.TypeGoal,
		Minute:    "90",
	})
	assert.ErrorIs(t, err, ErrLockedMatch)

	_, err = svc.DeleteEvent(context.Background(), operatorSession(), 7, 1)
	assert.ErrorIs(t, err, ErrLockedMatch)

	_, err = svc.Finalize(context.Background(), operatorSession(), 7)
	assert.ErrorIs(t, err, ErrLockedMatch)

	// Reopen unlocks the match and mutations succeed again.
	reopened, err := svc.Reopen(context.Background(), operatorSession(), 7)
	require.NoError(t, err)
	assert.False(t, reopened.IsPlayed)

	_, err = svc.AddEvent(context.Background(), operatorSession(), AddEventInput{
		MatchID:   7,
		PlayerID:  100,
		EventType: matchevent.TypeGoal,
		Minute:    "90",
	})
	assert.NoError(t, err)

	assert.False(t, matchRepo.matches[7].IsPlayed)
}

func TestLiveReopenRequiresFinalizedMatch(t *testing.T) {
	svc, _, _ := newLiveFixture()

	_, err := svc.Reopen(context.Background(), operatorSession(), 7)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLiveDeleteEventRecountsScore(t *testing.T) {
	svc, _, eventRepo := newLiveFixture()
	eventRepo.byMatch[7] = []matchevent.Event{
		{ID: 1, MatchID: 7, PlayerID: 100, EventType: matchevent.TypeGoal, Minute: 5},
		{ID: 2, MatchID: 7, PlayerID: 200, EventType: matchevent.TypeGoal, Minute: 50},
	}
	eventRepo.nextID = 2

	view, err := svc.DeleteEvent(context.Background(), operatorSession(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, view.HomeScore())
	assert.Equal(t, 1, view.AwayScore())
}
