package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/renca-fc/league-console/internal/domain/category"
	"github.com/renca-fc/league-console/internal/domain/club"
	"github.com/renca-fc/league-console/internal/domain/team"
	"github.com/renca-fc/league-console/internal/domain/venue"
	"github.com/renca-fc/league-console/internal/session"
)

// ClubService covers club administration and the read-only reference
// data around it (categories, venues).
type ClubService struct {
	clubRepo     club.Repository
	teamRepo     team.Repository
	categoryRepo category.Repository
	venueRepo    venue.Repository
}

func NewClubService(
	clubRepo club.Repository,
	teamRepo team.Repository,
	categoryRepo category.Repository,
	venueRepo venue.Repository,
) *ClubService {
	return &ClubService{
		clubRepo:     clubRepo,
		teamRepo:     teamRepo,
		categoryRepo: categoryRepo,
		venueRepo:    venueRepo,
	}
}

func (s *ClubService) ListClubs(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListClubs")
	defer span.End()

	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return clubs, nil
}

func (s *ClubService) GetClubDetails(ctx context.Context, clubID int64) (club.FullDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.GetClubDetails")
	defer span.End()

	if clubID <= 0 {
		return club.FullDetail{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	detail, err := s.clubRepo.GetDetails(ctx, clubID)
	if err != nil {
		return club.FullDetail{}, fmt.Errorf("get club details: %w", err)
	}
	return detail, nil
}

func (s *ClubService) CreateClub(ctx context.Context, sess *session.Session, draft club.Draft) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.CreateClub")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return club.Club{}, err
	}
	draft, err = normalizeClubDraft(draft)
	if err != nil {
		return club.Club{}, err
	}

	created, err := s.clubRepo.Create(ctx, token, draft)
	if err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}
	return created, nil
}

func (s *ClubService) UpdateClub(ctx context.Context, sess *session.Session, clubID int64, draft club.Draft) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.UpdateClub")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return club.Club{}, err
	}
	if clubID <= 0 {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	draft, err = normalizeClubDraft(draft)
	if err != nil {
		return club.Club{}, err
	}

	updated, err := s.clubRepo.Update(ctx, token, clubID, draft)
	if err != nil {
		return club.Club{}, fmt.Errorf("update club: %w", err)
	}
	return updated, nil
}

func normalizeClubDraft(draft club.Draft) (club.Draft, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return club.Draft{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	if !club.IsKnownSeries(draft.LeagueSeries) {
		return club.Draft{}, fmt.Errorf("%w: unknown series %q", ErrInvalidInput, draft.LeagueSeries)
	}
	draft.LeagueSeries = club.NormalizeSeries(draft.LeagueSeries)
	return draft, nil
}

func (s *ClubService) ListTeamsByCategory(ctx context.Context, categoryID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListTeamsByCategory")
	defer span.End()

	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	teams, err := s.teamRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// EnrollTeam registers a club in a category. The backend enforces the
// one-team-per-club-per-category rule and answers conflict when the
// club is already enrolled.
func (s *ClubService) EnrollTeam(ctx context.Context, sess *session.Session, clubID, categoryID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.EnrollTeam")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return team.Team{}, err
	}
	if clubID <= 0 {
		return team.Team{}, fmt.Errorf("%w: a club must be selected", ErrInvalidInput)
	}
	if categoryID <= 0 {
		return team.Team{}, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	created, err := s.teamRepo.Create(ctx, token, clubID, categoryID)
	if err != nil {
		return team.Team{}, fmt.Errorf("enroll team: %w", err)
	}
	return created, nil
}

func (s *ClubService) ListCategories(ctx context.Context) ([]category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListCategories")
	defer span.End()

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *ClubService) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListVenues")
	defer span.End()

	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}
