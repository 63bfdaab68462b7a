package matchevent

// GoalCount derives one side's score from the event log: the number of
// GOAL events whose scorer belongs to teamID. teamByPlayer maps player
// id to team id; events by unknown players count for neither side.
//
// The count is independent of event order and must be recomputed from
// the full log after every mutation — never cached across edits.
func GoalCount(events []Event, teamByPlayer map[int64]int64, teamID int64) int {
	count := 0
	for _, event := range events {
		if event.EventType != TypeGoal {
			continue
		}
		if teamByPlayer[event.PlayerID] == teamID {
			count++
		}
	}
	return count
}
