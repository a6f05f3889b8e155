package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/broker"
	"github.com/mysterydesk/gumshoe/internal/db"
	"github.com/mysterydesk/gumshoe/internal/envstruct"
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/investigation"
	"github.com/mysterydesk/gumshoe/internal/logging"
	"github.com/mysterydesk/gumshoe/internal/pprofserver"
	"github.com/mysterydesk/gumshoe/internal/repositories"
)

type config struct {
	Addr        string `env:"GUMSHOE_ADDR" envDefault:"localhost:4000"`
	PprofPort   string `env:"GUMSHOE_PPROF_PORT" envDefault:":6060"`
	SqliteURL   string `env:"GUMSHOE_SQLITE_URL" envDefault:"./gumshoe.sqlite"`
	Environment string `env:"GUMSHOE_ENV" envDefault:"development"`
}

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	investigator   *investigation.Service
	states         *stateManager
	// interviews hands an in-flight interview answer to a reconnecting
	// SSE consumer, keyed by session token and suspect id.
	interviews *broker.ChannelBroker[interviewKey, string]
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.Error("server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	// The .env file is a development convenience, missing in production.
	_ = godotenv.Load()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	// pprof listens on localhost only so that it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	dbs, err := db.NewDatabase(cfg.SqliteURL)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	logger.Info("connected to db")

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 7 * 24 * time.Hour

	appStates := repositories.NewAppStateRepository(dbs, logger)

	interviews := broker.NewChannelBroker[interviewKey, string]()
	go interviews.Start()
	defer interviews.Stop()

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		investigator:   investigation.NewService(ai.NewClient(), logger, cfg.Environment == "production"),
		states:         newStateManager(appStates, logger),
		interviews:     interviews,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}
