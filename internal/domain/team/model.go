package team

// Team is one club's side in one category. The backend enforces at
// most one team per club per category; a duplicate create surfaces as
// a conflict, never a crash.
type Team struct {
	ID         int64
	ClubID     int64
	CategoryID int64
	ClubName   string
	LogoURL    string
	Series     string
}
