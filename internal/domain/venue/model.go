package venue

// Venue is a pitch where matches are scheduled.
type Venue struct {
	ID       int64
	Name     string
	Location string
}
