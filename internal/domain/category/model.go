package category

import "strings"

// ParentAdults marks the adult divisions, which are additionally split
// by club series (Honor/Ascenso).
const ParentAdults = "Adultos"

// Category is a season division. Point values feed the backend's
// leaderboard computation and are configuration, not derived data.
type Category struct {
	ID             int64
	Name           string
	ParentCategory string
	PointsWin      int
	PointsDraw     int
	PointsLoss     int
}

func (c Category) IsAdult() bool {
	return strings.EqualFold(strings.TrimSpace(c.ParentCategory), ParentAdults)
}
