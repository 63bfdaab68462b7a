package audit

import "time"

// Entry is one audit-log line. MatchInfo is the backend's rendered
// "Home vs Away" label, or "N/A" for entries without a match.
type Entry struct {
	ID        int64
	MatchInfo string
	Action    string
	Details   string
	Timestamp time.Time
}
