package usecase

import (
	"fmt"
	"strings"
	"time"

	"context"

	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchday"
	"github.com/renca-fc/league-console/internal/session"
)

// ScheduleService owns match-day rounds and the grouped fixture views
// built from them.
type ScheduleService struct {
	matchDayRepo matchday.Repository
	matchRepo    match.Repository
	now          func() time.Time
}

func NewScheduleService(matchDayRepo matchday.Repository, matchRepo match.Repository) *ScheduleService {
	return &ScheduleService{
		matchDayRepo: matchDayRepo,
		matchRepo:    matchRepo,
		now:          time.Now,
	}
}

func (s *ScheduleService) ListMatchDays(ctx context.Context) ([]matchday.Day, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListMatchDays")
	defer span.End()

	days, err := s.matchDayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match days: %w", err)
	}
	return days, nil
}

func (s *ScheduleService) CreateMatchDay(ctx context.Context, sess *session.Session, draft matchday.Draft) (matchday.Day, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.CreateMatchDay")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return matchday.Day{}, err
	}
	if strings.TrimSpace(draft.Name) == "" {
		return matchday.Day{}, fmt.Errorf("%w: match day name is required", ErrInvalidInput)
	}
	if draft.StartDate.IsZero() || draft.EndDate.IsZero() {
		return matchday.Day{}, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if draft.EndDate.Before(draft.StartDate) {
		return matchday.Day{}, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	day, err := s.matchDayRepo.Create(ctx, token, draft)
	if err != nil {
		return matchday.Day{}, fmt.Errorf("create match day: %w", err)
	}
	return day, nil
}

func (s *ScheduleService) DeleteMatchDay(ctx context.Context, sess *session.Session, dayID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.DeleteMatchDay")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return err
	}
	if dayID <= 0 {
		return fmt.Errorf("%w: match day id is required", ErrInvalidInput)
	}
	if err := s.matchDayRepo.Delete(ctx, token, dayID); err != nil {
		return fmt.Errorf("delete match day: %w", err)
	}
	return nil
}

// GroupedOptions selects which bucketing variant a view wants.
type GroupedOptions struct {
	Series     string
	ShowPast   bool
	PublicView bool
}

// GroupedMatches fetches a category's matches and partitions them into
// round buckets. Rounds arrive from the backend in creation order and
// are grouped as supplied, matching the console's historic behavior.
func (s *ScheduleService) GroupedMatches(ctx context.Context, categoryID int64, opts GroupedOptions) (*matchday.Grouping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GroupedMatches")
	defer span.End()

	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	days, err := s.matchDayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match days: %w", err)
	}
	matches, err := s.matchRepo.ListByCategory(ctx, categoryID, opts.Series)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matchday.Group(days, matches, matchday.GroupOptions{
		ShowPast:   opts.ShowPast,
		Now:        s.now(),
		PublicView: opts.PublicView,
	}), nil
}
