package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/renca-fc/league-console/external/leagueapi"
	"github.com/renca-fc/league-console/internal/config"
	"github.com/renca-fc/league-console/internal/domain/category"
	"github.com/renca-fc/league-console/internal/domain/club"
	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchday"
	"github.com/renca-fc/league-console/internal/domain/player"
	"github.com/renca-fc/league-console/internal/domain/standings"
	"github.com/renca-fc/league-console/internal/domain/team"
	"github.com/renca-fc/league-console/internal/domain/venue"
	cacherepo "github.com/renca-fc/league-console/internal/infrastructure/repository/cache"
	"github.com/renca-fc/league-console/internal/interfaces/httpapi"
	"github.com/renca-fc/league-console/internal/platform/cache"
	idgen "github.com/renca-fc/league-console/internal/platform/id"
	"github.com/renca-fc/league-console/internal/platform/logging"
	"github.com/renca-fc/league-console/internal/platform/resilience"
	"github.com/renca-fc/league-console/internal/poll"
	"github.com/renca-fc/league-console/internal/usecase"
)

// Application bundles the wired HTTP server and the background fixture
// poller so main can start and stop them together.
type Application struct {
	Server *http.Server
	Poller *poll.Runner
}

func New(cfg config.Config, logger *slog.Logger, clientLogger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if clientLogger == nil {
		clientLogger = logging.Default()
	}

	client := leagueapi.NewClient(leagueapi.ClientConfig{
		BaseURL:    cfg.BackendBaseURL,
		Timeout:    cfg.BackendTimeout,
		MaxRetries: cfg.BackendMaxRetries,
		Logger:     clientLogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.BackendCircuitEnabled,
			FailureThreshold: cfg.BackendCircuitFailureCount,
			OpenTimeout:      cfg.BackendCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.BackendCircuitHalfOpenMaxReq,
		},
	})

	var (
		clubRepo      club.Repository      = client.Clubs()
		categoryRepo  category.Repository  = client.Categories()
		teamRepo      team.Repository      = client.Teams()
		playerRepo    player.Repository    = client.Players()
		venueRepo     venue.Repository     = client.Venues()
		matchRepo     match.Repository     = client.Matches()
		matchDayRepo  matchday.Repository  = client.MatchDays()
		standingsRepo standings.Repository = client.Standings()
	)
	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		clubRepo = cacherepo.NewClubRepository(clubRepo, store)
		categoryRepo = cacherepo.NewCategoryRepository(categoryRepo, store)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		venueRepo = cacherepo.NewVenueRepository(venueRepo, store)
		matchRepo = cacherepo.NewMatchRepository(matchRepo, store)
		matchDayRepo = cacherepo.NewMatchDayRepository(matchDayRepo, store)
		standingsRepo = cacherepo.NewStandingsRepository(standingsRepo, store)
	}

	scheduleSvc := usecase.NewScheduleService(matchDayRepo, matchRepo)
	matchSvc := usecase.NewMatchService(matchRepo)
	liveSvc := usecase.NewLiveMatchService(matchRepo, playerRepo, client.MatchEvents(), logger)
	rosterSvc := usecase.NewRosterService(playerRepo)
	clubSvc := usecase.NewClubService(clubRepo, teamRepo, categoryRepo, venueRepo)
	standingsSvc := usecase.NewStandingsService(standingsRepo)
	accountSvc := usecase.NewAccountService(client.Users(), client.AuditLogs(), logger)

	handler := httpapi.NewHandler(
		scheduleSvc,
		matchSvc,
		liveSvc,
		rosterSvc,
		clubSvc,
		standingsSvc,
		accountSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, idgen.NewRandomGenerator())

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	app := &Application{Server: server}
	if cfg.PollEnabled {
		app.Poller = poll.NewRunner(categoryRepo, matchRepo, poll.Config{
			Interval: cfg.PollInterval,
			Workers:  cfg.PollWorkers,
		}, logger)
	}

	return app, nil
}
