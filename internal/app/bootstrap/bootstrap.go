package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	gateservice "alumvote/contexts/access-control/gate-service"
	gatepostgres "alumvote/contexts/access-control/gate-service/adapters/postgres"
	gatesecurity "alumvote/contexts/access-control/gate-service/adapters/security"
	ballotservice "alumvote/contexts/election-operations/ballot-service"
	ballotpostgres "alumvote/contexts/election-operations/ballot-service/adapters/postgres"
	electionservice "alumvote/contexts/election-operations/election-service"
	electionpostgres "alumvote/contexts/election-operations/election-service/adapters/postgres"
	nominationservice "alumvote/contexts/election-operations/nomination-service"
	nominationpostgres "alumvote/contexts/election-operations/nomination-service/adapters/postgres"
	notificationservice "alumvote/contexts/engagement/notification-service"
	notificationpostgres "alumvote/contexts/engagement/notification-service/adapters/postgres"
	sessionservice "alumvote/contexts/identity-access/session-service"
	sessionpostgres "alumvote/contexts/identity-access/session-service/adapters/postgres"
	sessionsecurity "alumvote/contexts/identity-access/session-service/adapters/security"
	"alumvote/internal/platform/config"
	"alumvote/internal/platform/db"
	"alumvote/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.AdminTokenSecret) == "" {
		return nil, errors.New("ADMIN_TOKEN_SECRET is required")
	}
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := migrate(pg); err != nil {
		_ = pg.Close()
		return nil, err
	}

	gateRepo := gatepostgres.NewRepository(pg.DB, logger)
	sessionRepo := sessionpostgres.NewRepository(pg.DB, logger)
	electionRepo := electionpostgres.NewRepository(pg.DB, logger)
	nominationRepo := nominationpostgres.NewRepository(pg.DB, logger)
	ballotRepo := ballotpostgres.NewRepository(pg.DB, logger)
	notificationRepo := notificationpostgres.NewRepository(pg.DB, logger)

	notificationModule := notificationservice.NewModule(notificationservice.Dependencies{
		Notifications: notificationRepo,
		Clock:         notificationpostgres.SystemClock{},
		IDGen:         notificationpostgres.UUIDGenerator{},
		Logger:        logger,
	})
	appender := notificationAppender{notifications: notificationModule.Service}

	gateModule := gateservice.NewModule(gateservice.Dependencies{
		Gates:           gateRepo,
		Hasher:          gatesecurity.NewBcryptHasher(cfg.BcryptCost),
		Clock:           gatepostgres.SystemClock{},
		IDGen:           gatepostgres.UUIDGenerator{},
		DefaultName:     cfg.DefaultGateName,
		DefaultPasscode: cfg.DefaultGatePasscode,
		Logger:          logger,
	})

	sessionModule := sessionservice.NewModule(sessionservice.Dependencies{
		Voters:         sessionRepo,
		Admins:         sessionRepo,
		Hasher:         sessionsecurity.NewBcryptHasher(cfg.BcryptCost),
		Tokens:         sessionsecurity.NewJWTAdminTokenCodec(cfg.AdminTokenSecret, cfg.AdminTokenTTL),
		Secrets:        sessionsecurity.RandomSecretSource{},
		Clock:          sessionpostgres.SystemClock{},
		IDGen:          sessionpostgres.UUIDGenerator{},
		Notifications:  sessionNotificationWriter{appender},
		DefaultChapter: cfg.DefaultChapter,
		Logger:         logger,
	})

	electionModule := electionservice.NewModule(electionservice.Dependencies{
		Elections:   electionRepo,
		Positions:   electionRepo,
		Reminders:   electionRepo,
		Tallies:     electionTallyReader{candidates: nominationRepo},
		Turnout:     sessionTurnoutReader{sessions: sessionModule.Service},
		Ballots:     ballotRepo,
		Nominations: nominationRepo,
		Voters:      sessionVoterResetter{sessions: sessionModule.Service},
		Clock:       electionpostgres.SystemClock{},
		IDGen:       electionpostgres.UUIDGenerator{},
		Location:    location,
		Logger:      logger,
	})

	electionSource := electionStateSource{elections: electionModule.Service}
	nominationModule := nominationservice.NewModule(nominationservice.Dependencies{
		Nominations:   nominationRepo,
		Candidates:    nominationRepo,
		Elections:     nominationElectionReader{source: electionSource},
		Positions:     nominationPositionReader{positions: electionRepo},
		Notifications: nominationNotificationWriter{appender},
		Clock:         nominationpostgres.SystemClock{},
		IDGen:         nominationpostgres.UUIDGenerator{},
		Logger:        logger,
	})

	ballotModule := ballotservice.NewModule(ballotservice.Dependencies{
		Votes:      ballotRepo,
		Elections:  ballotElectionReader{source: electionSource},
		Positions:  ballotPositionReader{positions: electionRepo},
		Candidates: ballotCandidateReader{candidates: nominationRepo},
		Clock:      ballotpostgres.SystemClock{},
		IDGen:      ballotpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	server := httpserver.New(httpserver.Modules{
		Gates:         gateModule,
		Sessions:      sessionModule,
		Elections:     electionModule,
		Nominations:   nominationModule,
		Ballots:       ballotModule,
		Notifications: notificationModule,
	}, logger, normalizeAddr(cfg.HTTPPort))

	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func migrate(pg *db.Postgres) error {
	if err := gatepostgres.AutoMigrate(pg.DB); err != nil {
		return err
	}
	if err := sessionpostgres.AutoMigrate(pg.DB); err != nil {
		return err
	}
	if err := electionpostgres.AutoMigrate(pg.DB); err != nil {
		return err
	}
	if err := nominationpostgres.AutoMigrate(pg.DB); err != nil {
		return err
	}
	if err := ballotpostgres.AutoMigrate(pg.DB); err != nil {
		return err
	}
	return notificationpostgres.AutoMigrate(pg.DB)
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
