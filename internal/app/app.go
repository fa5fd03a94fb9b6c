package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/panjf2000/ants/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/config"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/coach"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
	"github.com/pitchmetrics/pitchmetrics/internal/infrastructure/repository/memory"
	"github.com/pitchmetrics/pitchmetrics/internal/infrastructure/repository/postgres"
	"github.com/pitchmetrics/pitchmetrics/internal/interfaces/httpapi"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/cache"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/resilience"
	"github.com/pitchmetrics/pitchmetrics/internal/usecase"
)

// App owns the wired object graph shared by the api server and the sync
// command. Close releases the pooled resources in reverse order.
type App struct {
	Sync    *usecase.SyncService
	Queries *usecase.QueryService
	Router  http.Handler

	db     *sqlx.DB
	pool   *ants.Pool
	logger *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg, logger)
	if err != nil {
		return nil, err
	}

	var (
		teams         team.Repository
		players       player.Repository
		coaches       coach.Repository
		referees      referee.Repository
		standingsRepo standings.Repository
	)
	if db != nil {
		teams = postgres.NewTeamDocumentRepository(db)
		players = postgres.NewPlayerDocumentRepository(db)
		coaches = postgres.NewCoachDocumentRepository(db)
		referees = postgres.NewRefereeDocumentRepository(db)
		standingsRepo = postgres.NewStandingsDocumentRepository(db)
	} else {
		logger.Warn("DB_URL is empty, using in-memory repositories")
		teams = memory.NewTeamRepository()
		players = memory.NewPlayerRepository()
		coaches = memory.NewCoachRepository()
		referees = memory.NewRefereeRepository()
		standingsRepo = memory.NewStandingsRepository()
	}

	store := cache.NewStore()
	if !cfg.CacheEnabled {
		store = cache.NewDisabledStore()
	}

	source, err := sourceapi.NewClient(sourceapi.ClientConfig{
		BaseURL:    cfg.SourceAPIBaseURL,
		APIToken:   cfg.SourceAPIToken,
		Timeout:    cfg.SourceAPITimeout,
		MaxRetries: cfg.SourceAPIMaxRetries,
		Breaker: resilience.CircuitBreakerOptions{
			FailureThreshold: cfg.SourceAPICircuitFailureCount,
			OpenTimeout:      cfg.SourceAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SourceAPICircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("build source api client: %w", err)
	}

	pool, err := ants.NewPool(cfg.SyncImageWorkers)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("build image worker pool: %w", err)
	}

	images := sourceapi.NewImageResolver(sourceapi.ImageResolverConfig{
		BaseURL:  cfg.ImageAPIBaseURL,
		APIToken: cfg.SourceAPIToken,
		Timeout:  cfg.ImageAPITimeout,
		Logger:   logger,
	})

	mapper := usecase.NewMapper(images, pool, logger)
	syncSvc := usecase.NewSyncService(source, mapper, teams, players, coaches, referees, standingsRepo, store, logger)
	queries := usecase.NewQueryService(teams, players, coaches, referees, standingsRepo, store, syncSvc, logger)

	handler := httpapi.NewHandler(queries, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &App{
		Sync:    syncSvc,
		Queries: queries,
		Router:  router,
		db:      db,
		pool:    pool,
		logger:  logger,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.pool != nil {
		a.pool.Release()
	}
	closeDB(a.db, a.logger)
}

// HTTPServer builds the serving-layer server around the wired router.
func (a *App) HTTPServer(cfg config.Config) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      a.Router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func openDB(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if cfg.DBURL == "" {
		return nil, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	return db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close database", "error", err)
	}
}
