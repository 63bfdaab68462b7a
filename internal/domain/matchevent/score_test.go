package matchevent

import "testing"

func TestGoalCount_CountsOnlyGoalsForTheTeam(t *testing.T) {
	t.Parallel()

	teamByPlayer := map[int64]int64{10: 1, 11: 1, 20: 2}
	events := []Event{
		{ID: 1, PlayerID: 10, EventType: TypeGoal, Minute: 12},
		{ID: 2, PlayerID: 20, EventType: TypeGoal, Minute: 30},
		{ID: 3, PlayerID: 11, EventType: TypeYellowCard, Minute: 41},
		{ID: 4, PlayerID: 11, EventType: TypeGoal, Minute: 77},
		{ID: 5, PlayerID: 99, EventType: TypeGoal, Minute: 80},
	}

	if got := GoalCount(events, teamByPlayer, 1); got != 2 {
		t.Fatalf("home goals = %d, want 2", got)
	}
	if got := GoalCount(events, teamByPlayer, 2); got != 1 {
		t.Fatalf("away goals = %d, want 1", got)
	}
}

func TestGoalCount_IndependentOfEventOrder(t *testing.T) {
	t.Parallel()

	teamByPlayer := map[int64]int64{10: 1, 20: 2}
	forward := []Event{
		{ID: 1, PlayerID: 10, EventType: TypeGoal, Minute: 5},
		{ID: 2, PlayerID: 20, EventType: TypeGoal, Minute: 50},
		{ID: 3, PlayerID: 10, EventType: TypeGoal, Minute: 88},
	}
	reversed := []Event{forward[2], forward[1], forward[0]}

	if GoalCount(forward, teamByPlayer, 1) != GoalCount(reversed, teamByPlayer, 1) {
		t.Fatal("goal count must not depend on event order")
	}
}

func TestParseMinute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want int
	}{
		{"45", 45},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"12.5", 0},
		{"-3", 0},
	}
	for _, tc := range cases {
		if got := ParseMinute(tc.raw); got != tc.want {
			t.Fatalf("ParseMinute(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
