package standings

// Row is one club's line in a category leaderboard. The backend
// computes it from played matches and the category's point values.
type Row struct {
	ClubID        int64
	ClubName      string
	LogoURL       string
	Played        int
	Won           int
	Drawn         int
	Lost          int
	GoalsFor      int
	GoalsAgainst  int
	GoalDiff      int
	Points        int
}

// Scorer is one line of the top-scorers table.
type Scorer struct {
	PlayerID   int64
	PlayerName string
	ClubName   string
	ClubLogo   string
	Goals      int
}

// AdultAggregateRef is the category reference the backend accepts for
// the combined adult top-scorers table.
const AdultAggregateRef = "adultos"
