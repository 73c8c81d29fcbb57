package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/matchpointhq/matchpoint/internal/config"
	"github.com/matchpointhq/matchpoint/internal/domain/challenge"
	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/message"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
	"github.com/matchpointhq/matchpoint/internal/domain/user"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/account/passport"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/notify"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/postgres"
	"github.com/matchpointhq/matchpoint/internal/interfaces/httpapi"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
	"github.com/matchpointhq/matchpoint/internal/platform/logging"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

// App owns the HTTP server and the background status sweeper.
type App struct {
	Server *http.Server

	cfg    config.Config
	sweep  *usecase.SweepService
	db     *sqlx.DB
	logger *logging.Logger
}

type repositories struct {
	leagues      league.Repository
	registration registration.Repository
	partnerships partnership.Repository
	challenges   challenge.Repository
	messages     message.Repository
	profiles     user.Repository
}

func New(cfg config.Config, logger *logging.Logger, accessLogger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if accessLogger == nil {
		accessLogger = slog.Default()
	}

	db, repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	notifier, err := buildNotifier(cfg, accessLogger)
	if err != nil {
		return nil, err
	}

	gen := idgen.NewRandomGenerator()

	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.registration, repos.partnerships, gen)
	registrationSvc := usecase.NewRegistrationService(repos.leagues, repos.registration, repos.partnerships)
	partnershipSvc := usecase.NewPartnershipService(repos.partnerships, gen)
	challengeSvc := usecase.NewChallengeService(repos.challenges, repos.leagues, repos.registration, repos.partnerships, notifier, gen, logger)
	messageSvc := usecase.NewMessageService(repos.messages, gen)
	profileSvc := usecase.NewProfileService(repos.profiles)
	sweepSvc := usecase.NewSweepService(repos.leagues, notifier, logger)

	passportClient := passport.NewClient(
		&http.Client{Timeout: cfg.PassportTimeout},
		cfg.PassportBaseURL,
		cfg.PassportIntrospectPath,
		cfg.PassportCacheTTL,
		accessLogger,
	)

	handler := httpapi.NewHandler(
		leagueSvc,
		registrationSvc,
		partnershipSvc,
		challengeSvc,
		messageSvc,
		profileSvc,
		sweepSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, passportClient, accessLogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server: server,
		cfg:    cfg,
		sweep:  sweepSvc,
		db:     db,
		logger: logger,
	}, nil
}

// StartSweeper runs the periodic status sweeper until ctx is cancelled.
func (a *App) StartSweeper(ctx context.Context) {
	go a.sweep.Run(ctx, a.cfg.SweepInterval, a.cfg.SweepWorkers)
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Server.Shutdown(ctx); err != nil {
		return err
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
	}

	return nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (*sqlx.DB, repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("db url not configured, using in-memory repositories")
		return nil, repositories{
			leagues:      memory.NewLeagueRepository(memory.SeedLeagues(time.Now())),
			registration: memory.NewRegistrationRepository(),
			partnerships: memory.NewPartnershipRepository(),
			challenges:   memory.NewChallengeRepository(),
			messages:     memory.NewMessageRepository(),
			profiles:     memory.NewProfileRepository(),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, repositories{}, fmt.Errorf("open db: %w", err)
	}

	return db, repositories{
		leagues:      postgres.NewLeagueRepository(db),
		registration: postgres.NewRegistrationRepository(db),
		partnerships: postgres.NewPartnershipRepository(db),
		challenges:   postgres.NewChallengeRepository(db),
		messages:     postgres.NewMessageRepository(db),
		profiles:     postgres.NewProfileRepository(db),
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}

func buildNotifier(cfg config.Config, logger *slog.Logger) (interface {
	usecase.ChallengeNotifier
	usecase.LeagueNotifier
}, error) {
	if !cfg.WebhookEnabled {
		return notify.Noop{}, nil
	}

	return notify.NewWebhookNotifier(notify.WebhookConfig{
		Endpoint:       cfg.WebhookEndpoint,
		SigningToken:   cfg.WebhookSigningToken,
		Timeout:        cfg.WebhookTimeout,
		CircuitBreaker: cfg.WebhookCircuit,
	}, logger)
}
