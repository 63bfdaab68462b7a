package player

import (
	"strings"
	"time"
)

// Player is a registered athlete. Each player belongs to exactly one
// team; team membership decides which side a goal event counts for.
type Player struct {
	ID        int64
	TeamID    int64
	Name      string
	DNI       string
	Number    *int
	BirthDate *time.Time
}

// Update carries the editable player fields. Nil means "leave as is",
// matching the backend's partial update semantics.
type Update struct {
	Name   string
	DNI    string
	Number *int
}

// ImportSummary is the backend's response to a roster spreadsheet
// upload: row-level errors are reported, not fatal.
type ImportSummary struct {
	Message      string
	CreatedCount int
	UpdatedCount int
	Errors       []string
}

// NormalizeDNI strips dots and dashes and uppercases the identifier,
// mirroring what the backend stores.
func NormalizeDNI(raw string) string {
	cleaned := strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(raw))
	return strings.ToUpper(cleaned)
}
