package leagueapi

import (
	"strings"
	"time"

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

// The backend emits bare ISO timestamps without a zone; league
// operations are all wall-clock local, so they parse as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

type clubDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	LeagueSeries string `json:"league_series"`
}

func (d clubDTO) toDomain() club.Club {
	return club.Club{
		ID:           d.ID,
		Name:         d.Name,
		LogoURL:      d.LogoURL,
		LeagueSeries: d.LeagueSeries,
	}
}

type clubDraftDTO struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	LeagueSeries string `json:"league_series"`
}

type clubRecordDTO struct {
	Played       int `json:"pj"`
	Won          int `json:"pg"`
	Drawn        int `json:"pe"`
	Lost         int `json:"pp"`
	GoalsFor     int `json:"gf"`
	GoalsAgainst int `json:"gc"`
	Points       int `json:"pts"`
}

type clubPlayerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Number      *int   `json:"number"`
	Goals       int    `json:"goals"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
}

type clubPastMatchDTO struct {
	ID           int64  `json:"id"`
	OpponentName string `json:"opponent_name"`
	HomeScore    int    `json:"home_score"`
	AwayScore    int    `json:"away_score"`
	MatchDate    string `json:"match_date"`
}

type clubCategoryDTO struct {
	CategoryName string             `json:"category_name"`
	Stats        clubRecordDTO      `json:"stats"`
	Players      []clubPlayerDTO    `json:"players"`
	PastMatches  []clubPastMatchDTO `json:"past_matches"`
}

type clubDetailDTO struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	LogoURL      string            `json:"logo_url"`
	LeagueSeries string            `json:"league_series"`
	Categories   []clubCategoryDTO `json:"categories"`
}

func (d clubDetailDTO) toDomain() club.FullDetail {
	detail := club.FullDetail{
		Club: club.Club{
			ID:           d.ID,
			Name:         d.Name,
			LogoURL:      d.LogoURL,
			LeagueSeries: d.LeagueSeries,
		},
		Categories: make([]club.CategoryDetail, 0, len(d.Categories)),
	}
	for _, item := range d.Categories {
		section := club.CategoryDetail{
			CategoryName: item.CategoryName,
			Record: club.Record{
				Played:       item.Stats.Played,
				Won:          item.Stats.Won,
				Drawn:        item.Stats.Drawn,
				Lost:         item.Stats.Lost,
				GoalsFor:     item.Stats.GoalsFor,
				GoalsAgainst: item.Stats.GoalsAgainst,
				Points:       item.Stats.Points,
			},
			Players:     make([]club.PlayerSummary, 0, len(item.Players)),
			PastMatches: make([]club.PastMatch, 0, len(item.PastMatches)),
		}
		for _, p := range item.Players {
			section.Players = append(section.Players, club.PlayerSummary{
				ID:          p.ID,
				Name:        p.Name,
				Number:      p.Number,
				Goals:       p.Goals,
				YellowCards: p.YellowCards,
				RedCards:    p.RedCards,
			})
		}
		for _, m := range item.PastMatches {
			section.PastMatches = append(section.PastMatches, club.PastMatch{
				ID:           m.ID,
				OpponentName: m.OpponentName,
				HomeScore:    m.HomeScore,
				AwayScore:    m.AwayScore,
				MatchDate:    parseTimestamp(m.MatchDate),
			})
		}
		detail.Categories = append(detail.Categories, section)
	}
	return detail
}

type categoryDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ParentCategory string `json:"parent_category"`
	PointsWin      int    `json:"points_win"`
	PointsDraw     int    `json:"points_draw"`
	PointsLoss     int    `json:"points_loss"`
}

func (d categoryDTO) toDomain() category.Category {
	return category.Category{
		ID:             d.ID,
		Name:           d.Name,
		ParentCategory: d.ParentCategory,
		PointsWin:      d.PointsWin,
		PointsDraw:     d.PointsDraw,
		PointsLoss:     d.PointsLoss,
	}
}

type teamClubDTO struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	LeagueSeries string `json:"league_series"`
}

type teamDTO struct {
	ID         int64        `json:"id"`
	ClubID     int64        `json:"club_id"`
	CategoryID int64        `json:"category_id"`
	Club       *teamClubDTO `json:"club"`
}

func (d teamDTO) toDomain() team.Team {
	out := team.Team{
		ID:         d.ID,
		ClubID:     d.ClubID,
		CategoryID: d.CategoryID,
	}
	if d.Club != nil {
		out.ClubName = d.Club.Name
		out.LogoURL = d.Club.LogoURL
		out.Series = d.Club.LeagueSeries
	}
	return out
}

type playerDTO struct {
	ID        int64  `json:"id"`
	TeamID    int64  `json:"team_id"`
	Name      string `json:"name"`
	DNI       string `json:"dni"`
	Number    *int   `json:"number"`
	BirthDate string `json:"birth_date"`
}

func (d playerDTO) toDomain() player.Player {
	return player.Player{
		ID:        d.ID,
		TeamID:    d.TeamID,
		Name:      d.Name,
		DNI:       d.DNI,
		Number:    d.Number,
		BirthDate: parseTimestamp(d.BirthDate),
	}
}

type playerUpdateDTO struct {
	Name   string `json:"name,omitempty"`
	DNI    string `json:"dni,omitempty"`
	Number *int   `json:"number,omitempty"`
}

type importSummaryDTO struct {
	Message      string   `json:"message"`
	CreatedCount int      `json:"created_count"`
	UpdatedCount int      `json:"updated_count"`
	Errors       []string `json:"errors"`
}

func (d importSummaryDTO) toDomain() player.ImportSummary {
	return player.ImportSummary{
		Message:      d.Message,
		CreatedCount: d.CreatedCount,
		UpdatedCount: d.UpdatedCount,
		Errors:       d.Errors,
	}
}

type venueDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (d venueDTO) toDomain() venue.Venue {
	return venue.Venue{ID: d.ID, Name: d.Name, Location: d.Location}
}

type matchSideDTO struct {
	Club *teamClubDTO `json:"club"`
}

func (d *matchSideDTO) clubName() string {
	if d == nil || d.Club == nil {
		return ""
	}
	return d.Club.Name
}

type matchDTO struct {
	ID         int64         `json:"id"`
	CategoryID int64         `json:"category_id"`
	HomeTeamID int64         `json:"home_team_id"`
	AwayTeamID int64         `json:"away_team_id"`
	VenueID    *int64        `json:"venue_id"`
	MatchDate  string        `json:"match_date"`
	HomeScore  int           `json:"home_score"`
	AwayScore  int           `json:"away_score"`
	IsPlayed   bool          `json:"is_played"`
	HomeTeam   *matchSideDTO `json:"home_team"`
	AwayTeam   *matchSideDTO `json:"away_team"`
	Venue      *venueDTO     `json:"venue"`
}

func (d matchDTO) toDomain() match.Match {
	out := match.Match{
		ID:           d.ID,
		CategoryID:   d.CategoryID,
		HomeTeamID:   d.HomeTeamID,
		AwayTeamID:   d.AwayTeamID,
		VenueID:      d.VenueID,
		MatchDate:    parseTimestamp(d.MatchDate),
		HomeScore:    d.HomeScore,
		AwayScore:    d.AwayScore,
		IsPlayed:     d.IsPlayed,
		HomeClubName: d.HomeTeam.clubName(),
		AwayClubName: d.AwayTeam.clubName(),
	}
	if d.Venue != nil {
		out.VenueName = d.Venue.Name
	}
	return out
}

type matchDraftDTO struct {
	CategoryID int64  `json:"category_id"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	VenueID    *int64 `json:"venue_id,omitempty"`
	MatchDate  string `json:"match_date,omitempty"`
}

func matchDraftToDTO(draft match.Draft) matchDraftDTO {
	out := matchDraftDTO{
		CategoryID: draft.CategoryID,
		HomeTeamID: draft.HomeTeamID,
		AwayTeamID: draft.AwayTeamID,
		VenueID:    draft.VenueID,
	}
	if draft.MatchDate != nil {
		out.MatchDate = draft.MatchDate.Format("2006-01-02T15:04:05")
	}
	return out
}

type matchResultDTO struct {
	HomeScore int  `json:"home_score"`
	AwayScore int  `json:"away_score"`
	IsPlayed  bool `json:"is_played"`
}

type eventPlayerDTO struct {
	Name string `json:"name"`
}

type eventDTO struct {
	ID        int64           `json:"id"`
	MatchID   int64           `json:"match_id"`
	PlayerID  int64           `json:"player_id"`
	EventType string          `json:"event_type"`
	Minute    int             `json:"minute"`
	Player    *eventPlayerDTO `json:"player"`
}

func (d eventDTO) toDomain() matchevent.Event {
	out := matchevent.Event{
		ID:        d.ID,
		MatchID:   d.MatchID,
		PlayerID:  d.PlayerID,
		EventType: d.EventType,
		Minute:    d.Minute,
	}
	if d.Player != nil {
		out.PlayerName = d.Player.Name
	}
	return out
}

type eventDraftDTO struct {
	MatchID   int64  `json:"match_id"`
	PlayerID  int64  `json:"player_id"`
	EventType string `json:"event_type"`
	Minute    int    `json:"minute"`
}

type matchDayDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (d matchDayDTO) toDomain() matchday.Day {
	out := matchday.Day{ID: d.ID, Name: d.Name}
	if parsed := parseTimestamp(d.StartDate); parsed != nil {
		out.StartDate = *parsed
	}
	if parsed := parseTimestamp(d.EndDate); parsed != nil {
		out.EndDate = *parsed
	}
	return out
}

type matchDayDraftDTO struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type leaderboardRowDTO struct {
	ClubID       int64  `json:"club_id"`
	ClubName     string `json:"club_name"`
	LogoURL      string `json:"logo_url"`
	Played       int    `json:"pj"`
	Won          int    `json:"pg"`
	Drawn        int    `json:"pe"`
	Lost         int    `json:"pp"`
	GoalsFor     int    `json:"gf"`
	GoalsAgainst int    `json:"gc"`
	GoalDiff     int    `json:"dg"`
	Points       int    `json:"pts"`
}

func (d leaderboardRowDTO) toDomain() standings.Row {
	return standings.Row{
		ClubID:       d.ClubID,
		ClubName:     d.ClubName,
		LogoURL:      d.LogoURL,
		Played:       d.Played,
		Won:          d.Won,
		Drawn:        d.Drawn,
		Lost:         d.Lost,
		GoalsFor:     d.GoalsFor,
		GoalsAgainst: d.GoalsAgainst,
		GoalDiff:     d.GoalDiff,
		Points:       d.Points,
	}
}

type scorerDTO struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	ClubName   string `json:"club_name"`
	ClubLogo   string `json:"club_logo"`
	Goals      int    `json:"goals"`
}

func (d scorerDTO) toDomain() standings.Scorer {
	return standings.Scorer{
		PlayerID:   d.PlayerID,
		PlayerName: d.PlayerName,
		ClubName:   d.ClubName,
		ClubLogo:   d.ClubLogo,
		Goals:      d.Goals,
	}
}

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (d userDTO) toDomain() user.User {
	return user.User{ID: d.ID, Username: d.Username}
}

type userCreateDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type auditEntryDTO struct {
	ID        int64  `json:"id"`
	MatchInfo string `json:"match_info"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

func (d auditEntryDTO) toDomain() audit.Entry {
	out := audit.Entry{
		ID:        d.ID,
		MatchInfo: d.MatchInfo,
		Action:    d.Action,
		Details:   d.Details,
	}
	if parsed := parseTimestamp(d.Timestamp); parsed != nil {
		out.Timestamp = *parsed
	}
	return out
}

type teamDraftDTO struct {
	ClubID     int64 `json:"club_id"`
	CategoryID int64 `json:"category_id"`
}
