package matchday

import (
	"time"

	"github.com/renca-fc/league-console/internal/domain/match"
)

// Bucket names for matches that fall outside every visible round. The
// admin console and the public dashboard historically used different
// labels; both are kept.
const (
	OverflowBucket       = "Otros / Sin Fecha"
	PublicOverflowBucket = "Otros"
)

// GroupOptions control how Group partitions matches into rounds.
type GroupOptions struct {
	// ShowPast keeps rounds whose end date is already behind Now.
	ShowPast bool
	// Now is the reference instant for past filtering.
	Now time.Time
	// PublicView applies the public dashboard variant: the overflow
	// bucket exists only when ShowPast is set, unmatched matches are
	// never re-checked against Now, and when hiding past rounds leaves
	// none visible the single most recent round is shown instead.
	PublicView bool
}

// Grouping is an insertion-ordered set of named buckets. Empty buckets
// stay present so "round X has no matches" is distinguishable from
// "round X is not visible".
type Grouping struct {
	names   []string
	buckets map[string][]match.Match
}

// Names returns bucket names in insertion order: visible rounds in the
// order they were supplied, then the overflow bucket if present.
func (g *Grouping) Names() []string {
	return g.names
}

// Bucket returns the matches grouped under name, and whether the
// bucket exists at all.
func (g *Grouping) Bucket(name string) ([]match.Match, bool) {
	items, ok := g.buckets[name]
	return items, ok
}

func (g *Grouping) addBucket(name string) {
	if _, ok := g.buckets[name]; ok {
		return
	}
	g.names = append(g.names, name)
	g.buckets[name] = []match.Match{}
}

func (g *Grouping) append(name string, m match.Match) {
	g.buckets[name] = append(g.buckets[name], m)
}

// Group partitions matches into named round buckets plus an overflow
// bucket. Rounds are scanned in the order supplied (first match wins;
// callers pre-sort if they want chronological buckets). A round is
// visible when ShowPast is set or its end date has not passed Now.
//
// Placement rules, in order:
//   - no match date: straight to the overflow bucket, with no time
//     check. (Admin view only; the public view treats these like any
//     other unmatched match.)
//   - the first visible round containing the date wins.
//   - otherwise overflow, but when hiding past rounds a dated match
//     that is itself in the past is dropped entirely rather than shown
//     as "other". Undated matches bypass that filter; the asymmetry is
//     long-standing observed behavior and is preserved on purpose.
func Group(days []Day, matches []match.Match, opts GroupOptions) *Grouping {
	grouping := &Grouping{buckets: make(map[string][]match.Match, len(days)+1)}

	visible := days
	if !opts.ShowPast {
		visible = make([]Day, 0, len(days))
		for _, day := range days {
			if !day.EndDate.Before(opts.Now) {
				visible = append(visible, day)
			}
		}
		if opts.PublicView && len(visible) == 0 && len(days) > 0 {
			visible = []Day{latestByEndDate(days)}
		}
	}

	for _, day := range visible {
		grouping.addBucket(day.Name)
	}

	overflow := ""
	if opts.PublicView {
		if opts.ShowPast {
			overflow = PublicOverflowBucket
		}
	} else {
		overflow = OverflowBucket
	}
	if overflow != "" {
		grouping.addBucket(overflow)
	}

	for _, m := range matches {
		if m.MatchDate == nil {
			if overflow != "" {
				grouping.append(overflow, m)
			}
			continue
		}

		mDate := *m.MatchDate
		placed := false
		for _, day := range visible {
			if day.Contains(mDate) {
				grouping.append(day.Name, m)
				placed = true
				break
			}
		}
		if placed || overflow == "" {
			continue
		}

		if opts.PublicView {
			grouping.append(overflow, m)
			continue
		}
		if opts.ShowPast || !mDate.Before(opts.Now) {
			grouping.append(overflow, m)
		}
	}

	return grouping
}

func latestByEndDate(days []Day) Day {
	latest := days[0]
	for _, day := range days[1:] {
		if day.EndDate.After(latest.EndDate) {
			latest = day
		}
	}
	return latest
}
