package httpapi

import (
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
	"github.com/renca-fc/league-console/internal/usecase"
)

const dateOnlyLayout = "2006-01-02"

type categoryDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ParentCategory string `json:"parent_category"`
	PointsWin      int    `json:"points_win"`
	PointsDraw     int    `json:"points_draw"`
	PointsLoss     int    `json:"points_loss"`
}

func categoryToDTO(c category.Category) categoryDTO {
	return categoryDTO{
		ID:             c.ID,
		Name:           c.Name,
		ParentCategory: c.ParentCategory,
		PointsWin:      c.PointsWin,
		PointsDraw:     c.PointsDraw,
		PointsLoss:     c.PointsLoss,
	}
}

type clubDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	LeagueSeries string `json:"league_series"`
}

func clubToDTO(c club.Club) clubDTO {
	return clubDTO{ID: c.ID, Name: c.Name, LogoURL: c.LogoURL, LeagueSeries: c.LeagueSeries}
}

// clubRecordDTO keeps the product's historic Spanish column keys
// (partidos jugados/ganados/... ) that the web views are built around.
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
	ID           int64      `json:"id"`
	OpponentName string     `json:"opponent_name"`
	HomeScore    int        `json:"home_score"`
	AwayScore    int        `json:"away_score"`
	MatchDate    *time.Time `json:"match_date"`
}

type clubCategoryDTO struct {
	CategoryName string             `json:"category_name"`
	Stats        clubRecordDTO      `json:"stats"`
	Players      []clubPlayerDTO    `json:"players"`
	PastMatches  []clubPastMatchDTO `json:"past_matches"`
}

type clubDetailDTO struct {
	clubDTO
	Categories []clubCategoryDTO `json:"categories"`
}

func clubDetailToDTO(d club.FullDetail) clubDetailDTO {
	out := clubDetailDTO{
		clubDTO:    clubToDTO(d.Club),
		Categories: make([]clubCategoryDTO, 0, len(d.Categories)),
	}
	for _, cat := range d.Categories {
		section := clubCategoryDTO{
			CategoryName: cat.CategoryName,
			Stats: clubRecordDTO{
				Played:       cat.Record.Played,
				Won:          cat.Record.Won,
				Drawn:        cat.Record.Drawn,
				Lost:         cat.Record.Lost,
				GoalsFor:     cat.Record.GoalsFor,
				GoalsAgainst: cat.Record.GoalsAgainst,
				Points:       cat.Record.Points,
			},
			Players:     make([]clubPlayerDTO, 0, len(cat.Players)),
			PastMatches: make([]clubPastMatchDTO, 0, len(cat.PastMatches)),
		}
		for _, p := range cat.Players {
			section.Players = append(section.Players, clubPlayerDTO{
				ID:          p.ID,
				Name:        p.Name,
				Number:      p.Number,
				Goals:       p.Goals,
				YellowCards: p.YellowCards,
				RedCards:    p.RedCards,
			})
		}
		for _, pm := range cat.PastMatches {
			section.PastMatches = append(section.PastMatches, clubPastMatchDTO{
				ID:           pm.ID,
				OpponentName: pm.OpponentName,
				HomeScore:    pm.HomeScore,
				AwayScore:    pm.AwayScore,
				MatchDate:    pm.MatchDate,
			})
		}
		out.Categories = append(out.Categories, section)
	}
	return out
}

type teamDTO struct {
	ID         int64  `json:"id"`
	ClubID     int64  `json:"club_id"`
	CategoryID int64  `json:"category_id"`
	ClubName   string `json:"club_name"`
	LogoURL    string `json:"logo_url"`
	Series     string `json:"series"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:         t.ID,
		ClubID:     t.ClubID,
		CategoryID: t.CategoryID,
		ClubName:   t.ClubName,
		LogoURL:    t.LogoURL,
		Series:     t.Series,
	}
}

type playerDTO struct {
	ID        int64      `json:"id"`
	TeamID    int64      `json:"team_id"`
	Name      string     `json:"name"`
	DNI       string     `json:"dni"`
	Number    *int       `json:"number"`
	BirthDate *time.Time `json:"birth_date"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		TeamID:    p.TeamID,
		Name:      p.Name,
		DNI:       p.DNI,
		Number:    p.Number,
		BirthDate: p.BirthDate,
	}
}

type importSummaryDTO struct {
	Message      string   `json:"message"`
	CreatedCount int      `json:"created_count"`
	UpdatedCount int      `json:"updated_count"`
	Errors       []string `json:"errors"`
}

type venueDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type matchDTO struct {
	ID           int64      `json:"id"`
	CategoryID   int64      `json:"category_id"`
	HomeTeamID   int64      `json:"home_team_id"`
	AwayTeamID   int64      `json:"away_team_id"`
	VenueID      *int64     `json:"venue_id"`
	MatchDate    *time.Time `json:"match_date"`
	HomeScore    int        `json:"home_score"`
	AwayScore    int        `json:"away_score"`
	IsPlayed     bool       `json:"is_played"`
	HomeClubName string     `json:"home_club_name"`
	AwayClubName string     `json:"away_club_name"`
	VenueName    string     `json:"venue_name"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		VenueID:      m.VenueID,
		MatchDate:    m.MatchDate,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		IsPlayed:     m.IsPlayed,
		HomeClubName: m.HomeClubName,
		AwayClubName: m.AwayClubName,
		VenueName:    m.VenueName,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

type matchDayDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func matchDayToDTO(d matchday.Day) matchDayDTO {
	return matchDayDTO{
		ID:        d.ID,
		Name:      d.Name,
		StartDate: d.StartDate.Format(dateOnlyLayout),
		EndDate:   d.EndDate.Format(dateOnlyLayout),
	}
}

// fixtureGroupDTO is one named round bucket. Groups are a JSON array,
// not an object, so bucket order survives serialization.
type fixtureGroupDTO struct {
	Name    string     `json:"name"`
	Matches []matchDTO `json:"matches"`
}

func groupingToDTO(grouping *matchday.Grouping) []fixtureGroupDTO {
	names := grouping.Names()
	out := make([]fixtureGroupDTO, 0, len(names))
	for _, name := range names {
		items, _ := grouping.Bucket(name)
		out = append(out, fixtureGroupDTO{Name: name, Matches: matchesToDTO(items)})
	}
	return out
}

type standingsRowDTO struct {
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

func standingsToDTO(rows []standings.Row) []standingsRowDTO {
	out := make([]standingsRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingsRowDTO{
			ClubID:       row.ClubID,
			ClubName:     row.ClubName,
			LogoURL:      row.LogoURL,
			Played:       row.Played,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalDiff:     row.GoalDiff,
			Points:       row.Points,
		})
	}
	return out
}

type scorerDTO struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	ClubName   string `json:"club_name"`
	ClubLogo   string `json:"club_logo"`
	Goals      int    `json:"goals"`
}

type eventDTO struct {
	ID         int64  `json:"id"`
	MatchID    int64  `json:"match_id"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	EventType  string `json:"event_type"`
	Minute     int    `json:"minute"`
}

func eventToDTO(e matchevent.Event) eventDTO {
	return eventDTO{
		ID:         e.ID,
		MatchID:    e.MatchID,
		PlayerID:   e.PlayerID,
		PlayerName: e.PlayerName,
		EventType:  e.EventType,
		Minute:     e.Minute,
	}
}

// liveSessionDTO always reports the event-log-derived scores, never
// the match record's stored ones.
type liveSessionDTO struct {
	Match     matchDTO    `json:"match"`
	Players   []playerDTO `json:"players"`
	Events    []eventDTO  `json:"events"`
	HomeScore int         `json:"home_score"`
	AwayScore int         `json:"away_score"`
}

func liveSessionToDTO(view usecase.LiveSession) liveSessionDTO {
	out := liveSessionDTO{
		Match:     matchToDTO(view.Match),
		Players:   make([]playerDTO, 0, len(view.Players)),
		Events:    make([]eventDTO, 0, len(view.Events)),
		HomeScore: view.HomeScore(),
		AwayScore: view.AwayScore(),
	}
	for _, p := range view.Players {
		out.Players = append(out.Players, playerToDTO(p))
	}
	for _, e := range view.Events {
		out.Events = append(out.Events, eventToDTO(e))
	}
	return out
}

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{ID: u.ID, Username: u.Username}
}

type auditEntryDTO struct {
	ID        int64     `json:"id"`
	MatchInfo string    `json:"match_info"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func auditEntryToDTO(e audit.Entry) auditEntryDTO {
	return auditEntryDTO{
		ID:        e.ID,
		MatchInfo: e.MatchInfo,
		Action:    e.Action,
		Details:   e.Details,
		Timestamp: e.Timestamp,
	}
}
