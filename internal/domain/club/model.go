package club

import (
	"strings"
	"time"
)

const (
	SeriesHonor   = "HONOR"
	SeriesAscenso = "ASCENSO"
)

// Club is a sports club; it fields at most one team per category.
type Club struct {
	ID           int64
	Name         string
	LogoURL      string
	LeagueSeries string
}

// Draft carries the fields an operator supplies when creating or
// updating a club.
type Draft struct {
	Name         string
	LogoURL      string
	LeagueSeries string
}

// FullDetail is the backend's expanded club view: one section per
// category the club fields a team in, with that team's record, roster
// stats, and played matches.
type FullDetail struct {
	Club       Club
	Categories []CategoryDetail
}

type CategoryDetail struct {
	CategoryName string
	Record       Record
	Players      []PlayerSummary
	PastMatches  []PastMatch
}

// Record is a team's category campaign, computed by the backend from
// played matches and the category's point values.
type Record struct {
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// PlayerSummary is one roster line with career event counts.
type PlayerSummary struct {
	ID          int64
	Name        string
	Number      *int
	Goals       int
	YellowCards int
	RedCards    int
}

// PastMatch is one played match from the club's point of view.
type PastMatch struct {
	ID           int64
	OpponentName string
	HomeScore    int
	AwayScore    int
	MatchDate    *time.Time
}

func NormalizeSeries(value string) string {
	series := strings.ToUpper(strings.TrimSpace(value))
	if series == "" {
		return SeriesHonor
	}
	return series
}

func IsKnownSeries(value string) bool {
	switch NormalizeSeries(value) {
	case SeriesHonor, SeriesAscenso:
		return true
	default:
		return false
	}
}
