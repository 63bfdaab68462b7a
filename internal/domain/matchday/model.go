package matchday

import "time"

// Day is a named competition round spanning an inclusive date range.
// Rounds are grouping/display constructs only, never a scheduling
// constraint.
type Day struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// Draft carries the fields an operator supplies when creating a round.
type Draft struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// Contains reports whether t falls inside the round. The end date is
// inclusive through 23:59:59.999 of that day.
func (d Day) Contains(t time.Time) bool {
	if t.Before(d.StartDate) {
		return false
	}
	return !t.After(endOfDay(d.EndDate))
}

func endOfDay(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), date.Location())
}
