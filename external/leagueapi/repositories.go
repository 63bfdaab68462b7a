package leagueapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/renca-fc/league-console/internal/domain/audit"
	"github.com/renca-fc/league-console/internal/domain/category"
	"github.com/renca-fc/league-console/internal/domain/club"
	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchday"
	"github.com/renca-fc/league-console/internal/domain/matchevent"
	"github.com/renca-fc/league-console/internal/domain/player"
	"github.com/renca-fc/league-console/internal/domain/standings"
	"github.com/renca-fc/league-console/internal/domain/team"
	"github.com/renca-fc/league-console/internal/domain/user"
	"github.com/renca-fc/league-console/internal/domain/venue"
)

// The repository accessors below bind the shared transport to one
// domain interface each; the wiring in internal/app hands these to the
// cache decorators and services.

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func seriesQuery(series string) url.Values {
	values := url.Values{}
	if series != "" {
		values.Set("series", series)
	}
	return values
}

type clubRepository struct{ c *Client }

func (c *Client) Clubs() club.Repository { return clubRepository{c} }

func (r clubRepository) List(ctx context.Context) ([]club.Club, error) {
	var dtos []clubDTO
	if err := r.c.doGET(ctx, "", "/clubs", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	out := make([]club.Club, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r clubRepository) GetDetails(ctx context.Context, clubID int64) (club.FullDetail, error) {
	var dto clubDetailDTO
	if err := r.c.doGET(ctx, "", "/clubs/"+formatID(clubID)+"/details", nil, &dto); err != nil {
		return club.FullDetail{}, fmt.Errorf("get club details: %w", err)
	}
	return dto.toDomain(), nil
}

func (r clubRepository) Create(ctx context.Context, token string, draft club.Draft) (club.Club, error) {
	payload := clubDraftDTO{Name: draft.Name, LogoURL: draft.LogoURL, LeagueSeries: draft.LeagueSeries}
	var dto clubDTO
	if err := r.c.doSend(ctx, http.MethodPost, token, "/clubs", payload, &dto); err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}
	return dto.toDomain(), nil
}

func (r clubRepository) Update(ctx context.Context, token string, clubID int64, draft club.Draft) (club.Club, error) {
	payload := clubDraftDTO{Name: draft.Name, LogoURL: draft.LogoURL, LeagueSeries: draft.LeagueSeries}
	var dto clubDTO
	if err := r.c.doSend(ctx, http.MethodPut, token, "/clubs/"+formatID(clubID), payload, &dto); err != nil {
		return club.Club{}, fmt.Errorf("update club: %w", err)
	}
	return dto.toDomain(), nil
}

type categoryRepository struct{ c *Client }

func (c *Client) Categories() category.Repository { return categoryRepository{c} }

func (r categoryRepository) List(ctx context.Context) ([]category.Category, error) {
	var dtos []categoryDTO
	if err := r.c.doGET(ctx, "", "/categories", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]category.Category, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

type teamRepository struct{ c *Client }

func (c *Client) Teams() team.Repository { return teamRepository{c} }

func (r teamRepository) ListByCategory(ctx context.Context, categoryID int64) ([]team.Team, error) {
	var dtos []teamDTO
	if err := r.c.doGET(ctx, "", "/teams/"+formatID(categoryID), nil, &dtos); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make([]team.Team, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r teamRepository) Create(ctx context.Context, token string, clubID, categoryID int64) (team.Team, error) {
	payload := teamDraftDTO{ClubID: clubID, CategoryID: categoryID}
	var dto teamDTO
	if err := r.c.doSend(ctx, http.MethodPost, token, "/teams", payload, &dto); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return dto.toDomain(), nil
}

type playerRepository struct{ c *Client }

func (c *Client) Players() player.Repository { return playerRepository{c} }

func (r playerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	var dtos []playerDTO
	if err := r.c.doGET(ctx, "", "/teams/"+formatID(teamID)+"/players", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}
	out := make([]player.Player, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r playerRepository) ListByMatch(ctx context.Context, matchID int64) ([]player.Player, error) {
	var dtos []playerDTO
	if err := r.c.doGET(ctx, "", "/matches/"+formatID(matchID)+"/players", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list match players: %w", err)
	}
	out := make([]player.Player, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r playerRepository) Update(ctx context.Context, token string, playerID int64, update player.Update) (player.Player, error) {
	payload := playerUpdateDTO{Name: update.Name, DNI: update.DNI, Number: update.Number}
	var dto playerDTO
	if err := r.c.doSend(ctx, http.MethodPut, token, "/players/"+formatID(playerID), payload, &dto); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return dto.toDomain(), nil
}

func (r playerRepository) Delete(ctx context.Context, token string, playerID int64) error {
	if err := r.c.doSend(ctx, http.MethodDelete, token, "/players/"+formatID(playerID), nil, nil); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (r playerRepository) UploadRoster(ctx context.Context, token string, teamID int64, filename string, file io.Reader) (player.ImportSummary, error) {
	query := url.Values{}
	query.Set("team_id", formatID(teamID))
	var dto importSummaryDTO
	if err := r.c.uploadFile(ctx, token, "/players/upload", query, filename, file, &dto); err != nil {
		return player.ImportSummary{}, fmt.Errorf("upload roster: %w", err)
	}
	return dto.toDomain(), nil
}

type venueRepository struct{ c *Client }

func (c *Client) Venues() venue.Repository { return venueRepository{c} }

func (r venueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	var dtos []venueDTO
	if err := r.c.doGET(ctx, "", "/venues", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	out := make([]venue.Venue, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

type matchRepository struct{ c *Client }

func (c *Client) Matches() match.Repository { return matchRepository{c} }

func (r matchRepository) ListByCategory(ctx context.Context, categoryID int64, series string) ([]match.Match, error) {
	var dtos []matchDTO
	if err := r.c.doGET(ctx, "", "/matches/"+formatID(categoryID), seriesQuery(series), &dtos); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	out := make([]match.Match, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r matchRepository) Get(ctx context.Context, matchID int64) (match.Match, error) {
	var dto matchDTO
	if err := r.c.doGET(ctx, "", "/matches/"+formatID(matchID)+"/detail", nil, &dto); err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	return dto.toDomain(), nil
}

func (r matchRepository) Create(ctx context.Context, token string, draft match.Draft) (match.Match, error) {
	var dto matchDTO
	if err := r.c.doSend(ctx, http.MethodPost, token, "/matches", matchDraftToDTO(draft), &dto); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return dto.toDomain(), nil
}

func (r matchRepository) Update(ctx context.Context, token string, matchID int64, draft match.Draft) (match.Match, error) {
	var dto matchDTO
	if err := r.c.doSend(ctx, http.MethodPut, token, "/matches/"+formatID(matchID), matchDraftToDTO(draft), &dto); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return dto.toDomain(), nil
}

func (r matchRepository) Delete(ctx context.Context, token string, matchID int64) error {
	if err := r.c.doSend(ctx, http.MethodDelete, token, "/matches/"+formatID(matchID), nil, nil); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func (r matchRepository) UpdateResult(ctx context.Context, token string, matchID int64, result match.Result) (match.Match, error) {
	payload := matchResultDTO{HomeScore: result.HomeScore, AwayScore: result.AwayScore, IsPlayed: result.IsPlayed}
	var dto matchDTO
	if err := r.c.doSend(ctx, http.MethodPut, token, "/matches/"+formatID(matchID)+"/result", payload, &dto); err != nil {
		return match.Match{}, fmt.Errorf("update match result: %w", err)
	}
	return dto.toDomain(), nil
}

type matchEventRepository struct{ c *Client }

func (c *Client) MatchEvents() matchevent.Repository { return matchEventRepository{c} }

func (r matchEventRepository) ListByMatch(ctx context.Context, matchID int64) ([]matchevent.Event, error) {
	var dtos []eventDTO
	if err := r.c.doGET(ctx, "", "/matches/"+formatID(matchID)+"/events", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	out := make([]matchevent.Event, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r matchEventRepository) Create(ctx context.Context, token string, draft matchevent.Draft) (matchevent.Event, error) {
	payload := eventDraftDTO{
		MatchID:   draft.MatchID,
		PlayerID:  draft.PlayerID,
		EventType: draft.EventType,
		Minute:    draft.Minute,
	}
	var dto eventDTO
	if err := r.c.doSend(ctx, http.MethodPost, token, "/match-events", payload, &dto); err != nil {
		return matchevent.Event{}, fmt.Errorf("create match event: %w", err)
	}
	return dto.toDomain(), nil
}

func (r matchEventRepository) Delete(ctx context.Context, token string, eventID int64) error {
	if err := r.c.doSend(ctx, http.MethodDelete, token, "/match-events/"+formatID(eventID), nil, nil); err != nil {
		return fmt.Errorf("delete match event: %w", err)
	}
	return nil
}

type matchDayRepository struct{ c *Client }

func (c *Client) MatchDays() matchday.Repository { return matchDayRepository{c} }

func (r matchDayRepository) List(ctx context.Context) ([]matchday.Day, error) {
	var dtos []matchDayDTO
	if err := r.c.doGET(ctx, "", "/match-days", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list match days: %w", err)
	}
	out := make([]matchday.Day, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r matchDayRepository) Create(ctx context.Context, token string, draft matchday.Draft) (matchday.Day, error) {
	payload := matchDayDraftDTO{
		Name:      draft.Name,
		StartDate: formatDate(draft.StartDate),
		EndDate:   formatDate(draft.EndDate),
	}
	var dto matchDayDTO
	if err := r.c.doSend(ctx, http.MethodPost, token, "/match-days", payload, &dto); err != nil {
		return matchday.Day{}, fmt.Errorf("create match day: %w", err)
	}
	return dto.toDomain(), nil
}

func (r matchDayRepository) Delete(ctx context.Context, token string, dayID int64) error {
	if err := r.c.doSend(ctx, http.MethodDelete, token, "/match-days/"+formatID(dayID), nil, nil); err != nil {
		return fmt.Errorf("delete match day: %w", err)
	}
	return nil
}

type standingsRepository struct{ c *Client }

func (c *Client) Standings() standings.Repository { return standingsRepository{c} }

func (r standingsRepository) Leaderboard(ctx context.Context, categoryID int64, series string) ([]standings.Row, error) {
	var dtos []leaderboardRowDTO
	if err := r.c.doGET(ctx, "", "/leaderboard/"+formatID(categoryID), seriesQuery(series), &dtos); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	out := make([]standings.Row, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r standingsRepository) AdultLeaderboard(ctx context.Context, series string) ([]standings.Row, error) {
	var dtos []leaderboardRowDTO
	if err := r.c.doGET(ctx, "", "/leaderboard/aggregated/adultos", seriesQuery(series), &dtos); err != nil {
		return nil, fmt.Errorf("adult leaderboard: %w", err)
	}
	out := make([]standings.Row, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r standingsRepository) TopScorers(ctx context.Context, categoryRef string, series string) ([]standings.Scorer, error) {
	var dtos []scorerDTO
	if err := r.c.doGET(ctx, "", "/top-scorers/"+url.PathEscape(categoryRef), seriesQuery(series), &dtos); err != nil {
		return nil, fmt.Errorf("top scorers: %w", err)
	}
	out := make([]standings.Scorer, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

type userRepository struct{ c *Client }

func (c *Client) Users() user.Repository { return userRepository{c} }

func (r userRepository) Login(ctx context.Context, credentials user.Credentials) (user.Token, error) {
	form := url.Values{}
	form.Set("username", credentials.Username)
	form.Set("password", credentials.Password)

	var dto tokenDTO
	if err := r.c.postForm(ctx, "/token", form, &dto); err != nil {
		return user.Token{}, fmt.Errorf("login: %w", err)
	}
	return user.Token{AccessToken: dto.AccessToken, TokenType: dto.TokenType}, nil
}

func (r userRepository) List(ctx context.Context, token string) ([]user.User, error) {
	var dtos []userDTO
	if err := r.c.doGET(ctx, token, "/users", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]user.User, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (r userRepository) Create(ctx context.Context, token string, credentials user.Credentials) (user.User, error) {
	payload := userCreateDTO{Username: credentials.Username, Password: credentials.Password}
	var dto userDTO
	if err := r.c.doSend(ctx, http.MethodPost, token, "/users", payload, &dto); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	return dto.toDomain(), nil
}

func (r userRepository) Delete(ctx context.Context, token string, userID int64) error {
	if err := r.c.doSend(ctx, http.MethodDelete, token, "/users/"+formatID(userID), nil, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

type auditRepository struct{ c *Client }

func (c *Client) AuditLogs() audit.Repository { return auditRepository{c} }

func (r auditRepository) List(ctx context.Context, token string, limit int) ([]audit.Entry, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	var dtos []auditEntryDTO
	if err := r.c.doGET(ctx, token, "/audit-logs", query, &dtos); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	out := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}
