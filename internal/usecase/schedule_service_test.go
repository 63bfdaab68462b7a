package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchday"
)

type stubMatchDayRepo struct {
	days    []matchday.Day
	created []matchday.Draft
	deleted []int64
}

func (s *stubMatchDayRepo) List(_ context.Context) ([]matchday.Day, error) {
	return s.days, nil
}

func (s *stubMatchDayRepo) Create(_ context.Context, _ string, draft matchday.Draft) (matchday.Day, error) {
	s.created = append(s.created, draft)
	return matchday.Day{
		ID:        int64(len(s.created)),
		Name:      draft.Name,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
	}, nil
}

func (s *stubMatchDayRepo) Delete(_ context.Context, _ string, dayID int64) error {
	s.deleted = append(s.deleted, dayID)
	return nil
}

type stubFixtureRepo struct {
	match.Repository

	matches []match.Match
	series  string
}

func (s *stubFixtureRepo) ListByCategory(_ context.Context, _ int64, series string) ([]match.Match, error) {
	s.series = series
	return s.matches, nil
}

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestScheduleCreateMatchDayValidatesRange(t *testing.T) {
	dayRepo := &stubMatchDayRepo{}
	svc := NewScheduleService(dayRepo, &stubFixtureRepo{})

	_, err := svc.CreateMatchDay(context.Background(), operatorSession(), matchday.Draft{
		Name:      "Fecha 3",
		StartDate: date(10),
		EndDate:   date(8),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateMatchDay(context.Background(), operatorSession(), matchday.Draft{
		StartDate: date(8),
		EndDate:   date(10),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	day, err := svc.CreateMatchDay(context.Background(), operatorSession(), matchday.Draft{
		Name:      "Fecha 3",
		StartDate: date(8),
		EndDate:   date(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Fecha 3", day.Name)
	assert.Len(t, dayRepo.created, 1)
}

func TestScheduleMutationsRejectAnonymous(t *testing.T) {
	svc := NewScheduleService(&stubMatchDayRepo{}, &stubFixtureRepo{})

	_, err := svc.CreateMatchDay(context.Background(), nil, matchday.Draft{
		Name:      "Fecha 1",
		StartDate: date(1),
		EndDate:   date(2),
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.DeleteMatchDay(context.Background(), nil, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestScheduleGroupedMatchesUsesClock(t *testing.T) {
	dayRepo := &stubMatchDayRepo{days: []matchday.Day{
		{ID: 1, Name: "Fecha 1", StartDate: date(1), EndDate: date(2)},
		{ID: 2, Name: "Fecha 2", StartDate: date(8), EndDate: date(9)},
	}}
	fixtureRepo := &stubFixtureRepo{matches: []match.Match{
		{ID: 1, MatchDate: datePtr(date(1))},
		{ID: 2, MatchDate: datePtr(date(8))},
	}}
	svc := NewScheduleService(dayRepo, fixtureRepo)
	svc.now = func() time.Time { return date(5) }

	grouping, err := svc.GroupedMatches(context.Background(), 3, GroupedOptions{Series: "honor"})
	require.NoError(t, err)

	// Fecha 1 ended before the injected now, so only Fecha 2 shows.
	assert.Equal(t, []string{"Fecha 2", matchday.OverflowBucket}, grouping.Names())
	upcoming, ok := grouping.Bucket("Fecha 2")
	require.True(t, ok)
	require.Len(t, upcoming, 1)
	assert.Equal(t, int64(2), upcoming[0].ID)

	assert.Equal(t, "honor", fixtureRepo.series)
}

func TestScheduleGroupedMatchesRequiresCategory(t *testing.T) {
	svc := NewScheduleService(&stubMatchDayRepo{}, &stubFixtureRepo{})

	_, err := svc.GroupedMatches(context.Background(), 0, GroupedOptions{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
