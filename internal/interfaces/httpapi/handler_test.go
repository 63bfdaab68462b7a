package httpapi

import (
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
)

func TestFlexibleMinute_AcceptsStringAndNumber(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"player_id":1,"event_type":"GOAL","minute":37}`, "37"},
		{"string", `{"player_id":1,"event_type":"GOAL","minute":"37"}`, "37"},
		{"free text", `{"player_id":1,"event_type":"GOAL","minute":"45+2"}`, "45+2"},
		{"null", `{"player_id":1,"event_type":"GOAL","minute":null}`, ""},
		{"absent", `{"player_id":1,"event_type":"GOAL"}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req addEventRequest
			if err := sonic.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if string(req.Minute) != tc.want {
				t.Fatalf("expected minute %q, got %q", tc.want, req.Minute)
			}
		})
	}
}

func TestParseMatchDate_Layouts(t *testing.T) {
	ts, err := parseMatchDate("2026-03-07T16:30")
	if err != nil {
		t.Fatalf("parse form datetime: %v", err)
	}
	want := time.Date(2026, time.March, 7, 16, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("expected %v, got %v", want, ts)
	}

	if got, err := parseMatchDate(""); err != nil || got != nil {
		t.Fatalf("empty date should mean unscheduled, got %v err %v", got, err)
	}

	if _, err := parseMatchDate("next saturday"); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
