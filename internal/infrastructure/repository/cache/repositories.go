// Package cache wraps the backend repositories with a read-through
// TTL cache. Reference data (clubs, categories, venues, rounds) and
// the derived tables are cached; match-control reads are deliberately
// not, because live entry must always see the backend's current state.
package cache

import (
	"context"
	"strconv"

	"github.com/renca-fc/league-console/internal/domain/category"
	"github.com/renca-fc/league-console/internal/domain/club"
	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchday"
	"github.com/renca-fc/league-console/internal/domain/standings"
	"github.com/renca-fc/league-console/internal/domain/team"
	"github.com/renca-fc/league-console/internal/domain/venue"
	basecache "github.com/renca-fc/league-console/internal/platform/cache"
)

type ClubRepository struct {
	next  club.Repository
	cache *basecache.Store
}

func NewClubRepository(next club.Repository, cache *basecache.Store) *ClubRepository {
	return &ClubRepository{next: next, cache: cache}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	v, err := r.cache.GetOrLoad(ctx, "club:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]club.Club(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]club.Club)
	return append([]club.Club(nil), items...), nil
}

func (r *ClubRepository) GetDetails(ctx context.Context, clubID int64) (club.FullDetail, error) {
	key := "club:detail:" + strconv.FormatInt(clubID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.GetDetails(ctx, clubID)
	})
	if err != nil {
		return club.FullDetail{}, err
	}

	detail, _ := v.(club.FullDetail)
	return detail, nil
}

func (r *ClubRepository) Create(ctx context.Context, token string, draft club.Draft) (club.Club, error) {
	created, err := r.next.Create(ctx, token, draft)
	if err != nil {
		return club.Club{}, err
	}
	r.cache.DeletePrefix(ctx, "club:")
	return created, nil
}

func (r *ClubRepository) Update(ctx context.Context, token string, clubID int64, draft club.Draft) (club.Club, error) {
	updated, err := r.next.Update(ctx, token, clubID, draft)
	if err != nil {
		return club.Club{}, err
	}
	r.cache.DeletePrefix(ctx, "club:")
	return updated, nil
}

type CategoryRepository struct {
	next  category.Repository
	cache *basecache.Store
}

func NewCategoryRepository(next category.Repository, cache *basecache.Store) *CategoryRepository {
	return &CategoryRepository{next: next, cache: cache}
}

func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	v, err := r.cache.GetOrLoad(ctx, "category:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]category.Category(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]category.Category)
	return append([]category.Category(nil), items...), nil
}

type VenueRepository struct {
	next  venue.Repository
	cache *basecache.Store
}

func NewVenueRepository(next venue.Repository, cache *basecache.Store) *VenueRepository {
	return &VenueRepository{next: next, cache: cache}
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	v, err := r.cache.GetOrLoad(ctx, "venue:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]venue.Venue(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]venue.Venue)
	return append([]venue.Venue(nil), items...), nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByCategory(ctx context.Context, categoryID int64) ([]team.Team, error) {
	key := "team:list:" + strconv.FormatInt(categoryID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) Create(ctx context.Context, token string, clubID, categoryID int64) (team.Team, error) {
	created, err := r.next.Create(ctx, token, clubID, categoryID)
	if err != nil {
		return team.Team{}, err
	}
	// Club details embed the club's teams, so both prefixes go.
	r.cache.DeletePrefix(ctx, "team:")
	r.cache.DeletePrefix(ctx, "club:")
	return created, nil
}

type MatchDayRepository struct {
	next  matchday.Repository
	cache *basecache.Store
}

func NewMatchDayRepository(next matchday.Repository, cache *basecache.Store) *MatchDayRepository {
	return &MatchDayRepository{next: next, cache: cache}
}

func (r *MatchDayRepository) List(ctx context.Context) ([]matchday.Day, error) {
	v, err := r.cache.GetOrLoad(ctx, "matchday:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]matchday.Day(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchday.Day)
	return append([]matchday.Day(nil), items...), nil
}

func (r *MatchDayRepository) Create(ctx context.Context, token string, draft matchday.Draft) (matchday.Day, error) {
	created, err := r.next.Create(ctx, token, draft)
	if err != nil {
		return matchday.Day{}, err
	}
	r.cache.DeletePrefix(ctx, "matchday:")
	return created, nil
}

func (r *MatchDayRepository) Delete(ctx context.Context, token string, dayID int64) error {
	if err := r.next.Delete(ctx, token, dayID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "matchday:")
	return nil
}

// MatchRepository caches fixture lists only. Get stays uncached: the
// live console's lock checks depend on reading the current is_played.
type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByCategory(ctx context.Context, categoryID int64, series string) ([]match.Match, error) {
	key := "match:list:" + strconv.FormatInt(categoryID, 10) + ":" + series
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCategory(ctx, categoryID, series)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) Get(ctx context.Context, matchID int64) (match.Match, error) {
	return r.next.Get(ctx, matchID)
}

func (r *MatchRepository) Create(ctx context.Context, token string, draft match.Draft) (match.Match, error) {
	created, err := r.next.Create(ctx, token, draft)
	if err != nil {
		return match.Match{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *MatchRepository) Update(ctx context.Context, token string, matchID int64, draft match.Draft) (match.Match, error) {
	updated, err := r.next.Update(ctx, token, matchID, draft)
	if err != nil {
		return match.Match{}, err
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *MatchRepository) Delete(ctx context.Context, token string, matchID int64) error {
	if err := r.next.Delete(ctx, token, matchID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *MatchRepository) UpdateResult(ctx context.Context, token string, matchID int64, result match.Result) (match.Match, error) {
	updated, err := r.next.UpdateResult(ctx, token, matchID, result)
	if err != nil {
		return match.Match{}, err
	}
	r.invalidate(ctx)
	return updated, nil
}

// Results feed the backend's leaderboards and scorer tables, so every
// match mutation drops the standings keys along with the fixtures.
func (r *MatchRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, "match:")
	r.cache.DeletePrefix(ctx, "standings:")
}

type StandingsRepository struct {
	next  standings.Repository
	cache *basecache.Store
}

func NewStandingsRepository(next standings.Repository, cache *basecache.Store) *StandingsRepository {
	return &StandingsRepository{next: next, cache: cache}
}

func (r *StandingsRepository) Leaderboard(ctx context.Context, categoryID int64, series string) ([]standings.Row, error) {
	key := "standings:board:" + strconv.FormatInt(categoryID, 10) + ":" + series
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.Leaderboard(ctx, categoryID, series)
		if err != nil {
			return nil, err
		}
		return append([]standings.Row(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]standings.Row)
	return append([]standings.Row(nil), rows...), nil
}

func (r *StandingsRepository) AdultLeaderboard(ctx context.Context, series string) ([]standings.Row, error) {
	key := "standings:board:adultos:" + series
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.AdultLeaderboard(ctx, series)
		if err != nil {
			return nil, err
		}
		return append([]standings.Row(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]standings.Row)
	return append([]standings.Row(nil), rows...), nil
}

func (r *StandingsRepository) TopScorers(ctx context.Context, categoryRef string, series string) ([]standings.Scorer, error) {
	key := "standings:scorers:" + categoryRef + ":" + series
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		scorers, err := r.next.TopScorers(ctx, categoryRef, series)
		if err != nil {
			return nil, err
		}
		return append([]standings.Scorer(nil), scorers...), nil
	})
	if err != nil {
		return nil, err
	}

	scorers, _ := v.([]standings.Scorer)
	return append([]standings.Scorer(nil), scorers...), nil
}
