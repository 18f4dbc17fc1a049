// Package postgres contains the concrete implementation of the
// persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"quill/config"
	"quill/internal/domain/lifecycle"
	"quill/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// RestrictedDB is the application-role connection. It is subject to
// the database's row-level security policies and serves every normal
// operation.
type RestrictedDB struct {
	*gorm.DB
}

// ElevatedDB is the service-role connection (BYPASSRLS). Call sites
// taking this type statically declare that they need to act without an
// authenticated session, e.g. the profile insert during registration.
type ElevatedDB struct {
	*gorm.DB
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens both PostgreSQL connections and wires their lifecycle.
func New(params Params) (*RestrictedDB, *ElevatedDB, error) {
	if params.Config.Postgres == nil || params.Config.Postgres.Restricted == nil || params.Config.Postgres.Elevated == nil {
		return nil, nil, errors.New("both restricted and elevated postgres credentials must be configured")
	}

	restricted, err := open(params.Config.Postgres.Restricted, params.Logger, params.Config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create restricted PostgreSQL client")
	}

	elevated, err := open(params.Config.Postgres.Elevated, params.Logger, params.Config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create elevated PostgreSQL client")
	}

	restrictedSQL, err := restricted.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get restricted sql.DB")
	}
	elevatedSQL, err := elevated.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get elevated sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := restrictedSQL.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL with restricted role")
			}
			if err := elevatedSQL.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL with elevated role")
			}

			go monitorDBPool(monitorCtx, params.Logger, restrictedSQL, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.Join(restrictedSQL.Close(), elevatedSQL.Close())
		},
	})

	return &RestrictedDB{DB: restricted}, &ElevatedDB{DB: elevated}, nil
}

func open(conn *pgLib.DBConn, logger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	db, err := pgLib.New(conn)
	if err != nil {
		return nil, err
	}

	return db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction. Every
		// external call here is independent; no multi-step local
		// transaction spans them.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
