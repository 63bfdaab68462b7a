package matchevent

import (
	"strconv"
	"strings"
)

const (
	TypeGoal       = "GOAL"
	TypeYellowCard = "YELLOW_CARD"
	TypeRedCard    = "RED_CARD"
)

// Event is one entry in a match's append/delete-only event log.
type Event struct {
	ID         int64
	MatchID    int64
	PlayerID   int64
	PlayerName string
	EventType  string
	Minute     int
}

// Draft carries the fields an operator supplies when recording an event.
type Draft struct {
	MatchID   int64
	PlayerID  int64
	EventType string
	Minute    int
}

func IsKnownType(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case TypeGoal, TypeYellowCard, TypeRedCard:
		return true
	default:
		return false
	}
}

// ParseMinute coerces free-form minute input through numeric parsing.
// Invalid or negative input becomes 0; the product deliberately keeps
// this permissive rather than rejecting the event.
func ParseMinute(raw string) int {
	minute, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || minute < 0 {
		return 0
	}
	return minute
}
