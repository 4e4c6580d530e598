package pgdb

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/record"
)

const schema = `
CREATE TABLE IF NOT EXISTS portal_record (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// DB stores records as rows of the portal_record table.
type DB struct {
	db *sqlx.DB
}

var _ record.Store = (*DB)(nil) // interface compliance check

// URL builds the connection string of the configured database.
func URL(conf core.DatabaseConfig) string {
	sslMode := "require"
	if conf.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Engine,
		User:     url.UserPassword(conf.User, conf.Password),
		Host:     conf.Address(),
		Path:     conf.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Open connects to the configured database, waits until it is ready and creates the schema.
func Open(ctx context.Context, conf *core.Config) (*DB, error) {
	db, err := sqlx.Open("postgres", URL(conf.Store.Database))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(ctx, db, 30); err != nil {
		_ = db.Close()
		return nil, err
	}
	pg := &DB{db: db}
	if err = pg.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return pg, nil
}

// New wraps an open connection. The schema is not created.
func New(db *sqlx.DB) *DB {
	return &DB{db: db}
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB, maxAttempts int) error {
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "DB ping timeout")
}

func (pg *DB) Migrate(ctx context.Context) error {
	if _, err := pg.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

func (pg *DB) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := pg.db.GetContext(ctx, &value, `SELECT value FROM portal_record WHERE key = $1`, key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "selecting record")
	}
	return value, true, nil
}

func (pg *DB) Write(ctx context.Context, key string, value []byte) error {
	q := `INSERT INTO portal_record (key, value, updated_at) VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := pg.db.ExecContext(ctx, q, key, value); err != nil {
		return errors.Wrap(err, "upserting record")
	}
	return nil
}

func (pg *DB) Remove(ctx context.Context, key string) error {
	if _, err := pg.db.ExecContext(ctx, `DELETE FROM portal_record WHERE key = $1`, key); err != nil {
		return errors.Wrap(err, "deleting record")
	}
	return nil
}

func (pg *DB) Close() error {
	return pg.db.Close()
}
