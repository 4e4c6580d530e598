package database

import (
	"context"

	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/storage/database/memdb"
	"github.com/campusdesk/portal/storage/database/pgdb"
	"github.com/campusdesk/portal/storage/database/redisdb"
)

// Open returns the record store selected by conf.Store.Engine and a func releasing it.
func Open(ctx context.Context, conf *core.Config) (record.Store, func() error, error) {
	noop := func() error { return nil }

	switch conf.Store.Engine {
	case core.StoreMemory, "":
		return memdb.Open(), noop, nil
	case core.StoreRedis:
		db, err := redisdb.Open(ctx, conf)
		if err != nil {
			return nil, noop, errors.Wrap(err, "opening redis store")
		}
		return db, db.Close, nil
	case core.StorePostgres:
		db, err := pgdb.Open(ctx, conf)
		if err != nil {
			return nil, noop, errors.Wrap(err, "opening postgres store")
		}
		return db, db.Close, nil
	default:
		return nil, noop, errors.Errorf("unknown store engine %q", conf.Store.Engine)
	}
}
