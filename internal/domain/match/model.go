package match

import "time"

// Match is one scheduled game. MatchDate is nil for unscheduled
// matches, which group into the overflow bucket.
//
// HomeScore and AwayScore are the backend's stored values and are
// advisory while a match is under live control: the authoritative
// score is derived from the event log and pushed back on finalize or
// reopen.
type Match struct {
	ID         int64
	CategoryID int64
	HomeTeamID int64
	AwayTeamID int64
	VenueID    *int64
	MatchDate  *time.Time
	HomeScore  int
	AwayScore  int
	IsPlayed   bool

	HomeClubName string
	AwayClubName string
	VenueName    string
}

// Draft carries the fields an operator supplies when scheduling a match.
type Draft struct {
	CategoryID int64
	HomeTeamID int64
	AwayTeamID int64
	VenueID    *int64
	MatchDate  *time.Time
}

// Result is the payload pushed on finalize and reopen. Scores must be
// the event-log-derived values, never the stored ones.
type Result struct {
	HomeScore int
	AwayScore int
	IsPlayed  bool
}
