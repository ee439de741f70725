package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the Postgres pool that stores sessions and messages, applies the
// embedded migrations and registers the instrumented *sql.DB.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *zap.Logger   `resolve:""`
	DBUser             string        `config:"DB_USER"`
	DBPass             string        `config:"DB_PASS"`
	DBHost             string        `config:"DB_HOST"`
	DBPort             string        `config:"DB_PORT" default:"5432"`
	DBName             string        `config:"DB_NAME"`
	DBSSLMode          string        `config:"DB_SSLMODE" default:"disable"`
	DBMaxConns         int           `config:"DB_MAX_CONNS" default:"10"`
	DBConnMaxIdleTime  time.Duration `config:"DB_CONN_MAX_IDLE_TIME" default:"5m"`
}

// Initialize connects to Postgres and migrates the conversation schema.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("parse database config: %w", err)
	}
	if di.DBMaxConns > 0 {
		cfg.MaxConns = int32(di.DBMaxConns)
	}
	if di.DBConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = di.DBConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("create connection pool: %w", err)
	}

	dbAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)
	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbAttributes,
		otelsql.WithInstrumentAttributesGetter(querySummaryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, dbAttributes)
	if err != nil {
		return ctx, fmt.Errorf("register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.migrate(); err != nil {
			return ctx, err
		}
	}

	di.Logger.Info("InitDB: connection pool ready",
		zap.String("host", di.DBHost),
		zap.String("database", di.DBName),
		zap.Int32("max_conns", cfg.MaxConns),
	)
	depend.Register(di.db)
	return ctx, nil
}

// dsn builds the connection URL; credentials are escaped so passwords may contain reserved characters.
func (di *InitDB) dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.DBUser, di.DBPass),
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     "/" + di.DBName,
		RawQuery: url.Values{"sslmode": {di.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func (di *InitDB) migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	di.Logger.Info("InitDB: conversation schema migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// Close releases the pool and unregisters the pool metrics.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Warn("InitDB: failed to close database connection", zap.Error(err))
	}
	if di.metricRegistration != nil {
		if err := di.metricRegistration.Unregister(); err != nil {
			di.Logger.Warn("InitDB: failed to unregister db stats metrics", zap.Error(err))
		}
	}
}

// querySummaryAttributes labels query and exec spans with the SQL commands and tables they touch.
func querySummaryAttributes(logger *zap.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(_ context.Context, method otelsql.Method, query string, _ []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}

		commands, tables := extractSQLOperation(logger, query)
		var attrs []attribute.KeyValue
		if len(commands) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(strings.TrimSpace(strings.Join(commands, ",")+" "+strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

func extractSQLOperation(logger *zap.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Debug("failed to extract SQL operation from query", zap.Error(err))
		return nil, nil
	}
	return meta.Commands, meta.Tables
}
