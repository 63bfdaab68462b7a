package leagueapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/renca-fc/league-console/internal/domain/matchday"
	"github.com/renca-fc/league-console/internal/domain/user"
	"github.com/renca-fc/league-console/internal/usecase"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	})
}

func TestListMatchesMapsEmbeddedRelations(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matches/3" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("series"); got != "HONOR" {
			t.Errorf("expected series=HONOR, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{
				"id": 7, "category_id": 3, "home_team_id": 10, "away_team_id": 20,
				"venue_id": 2, "match_date": "2026-03-08T16:30:00",
				"home_score": 1, "away_score": 0, "is_played": false,
				"home_team": {"club": {"name": "Deportivo Renca"}},
				"away_team": {"club": {"name": "Lo Velasquez"}},
				"venue": {"id": 2, "name": "Cancha Municipal"}
			},
			{
				"id": 8, "category_id": 3, "home_team_id": 10, "away_team_id": 30,
				"venue_id": null, "match_date": null,
				"home_score": 0, "away_score": 0, "is_played": false
			}
		]`)
	}))

	matches, err := client.Matches().ListByCategory(context.Background(), 3, "HONOR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	first := matches[0]
	if first.HomeClubName != "Deportivo Renca" || first.AwayClubName != "Lo Velasquez" {
		t.Fatalf("club names not mapped: %+v", first)
	}
	if first.VenueName != "Cancha Municipal" {
		t.Fatalf("expected venue name, got %q", first.VenueName)
	}
	if first.MatchDate == nil || first.MatchDate.Hour() != 16 {
		t.Fatalf("match date not parsed: %v", first.MatchDate)
	}

	second := matches[1]
	if second.MatchDate != nil {
		t.Fatalf("expected nil match date for unscheduled match, got %v", second.MatchDate)
	}
	if second.VenueID != nil {
		t.Fatalf("expected nil venue id, got %v", second.VenueID)
	}
}

func TestGetMatchNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "Partido no encontrado"}`)
	}))

	_, err := client.Matches().Get(context.Background(), 99)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateTeamConflictSurfacesDetail(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail": "El club ya tiene un equipo en esta categoria"}`)
	}))

	_, err := client.Teams().Create(context.Background(), "tok-1", 5, 3)
	if !errors.Is(err, usecase.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "ya tiene un equipo") {
		t.Fatalf("expected backend detail in error, got %v", err)
	}
}

func TestWriteUnauthorized(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail": "Not authenticated"}`)
	}))

	err := client.Matches().Delete(context.Background(), "stale", 7)
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestServerErrorBecomesDependencyUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Clubs().List(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestLoginPostsFormCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("username") != "admin" || r.PostForm.Get("password") != "secret" {
			t.Errorf("credentials not forwarded: %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token": "abc", "token_type": "bearer"}`)
	}))

	token, err := client.Users().Login(context.Background(), user.Credentials{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccessToken != "abc" || token.TokenType != "bearer" {
		t.Fatalf("token not mapped: %+v", token)
	}
}

func TestUploadRosterSendsMultipart(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/upload" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("team_id"); got != "4" {
			t.Errorf("expected team_id=4, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file field: %v", err)
		} else {
			defer func() { _ = file.Close() }()
			if header.Filename != "nomina.xlsx" {
				t.Errorf("unexpected filename %q", header.Filename)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message": "Proceso completado", "created_count": 2, "updated_count": 1, "errors": []}`)
	}))

	summary, err := client.Players().UploadRoster(context.Background(), "tok-1", 4, "nomina.xlsx", strings.NewReader("spreadsheet-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.CreatedCount != 2 || summary.UpdatedCount != 1 {
		t.Fatalf("summary not mapped: %+v", summary)
	}
}

func TestMatchDayRoundTripUsesDateOnlyFormat(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"start_date":"2026-03-07"`) {
			t.Errorf("start_date not date-only: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id": 1, "name": "Fecha 1", "start_date": "2026-03-07", "end_date": "2026-03-08"}`)
	}))

	day, err := client.MatchDays().Create(context.Background(), "tok-1", matchday.Draft{
		Name:      "Fecha 1",
		StartDate: time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.EndDate.Equal(time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end date not parsed: %v", day.EndDate)
	}
}
