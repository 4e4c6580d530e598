package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/storage/database/memdb"
	"github.com/campusdesk/portal/storage/database/redisdb"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		conf := core.NewTestConfig()
		store, closeFn, err := Open(ctx, conf)
		require.NoError(t, err)
		assert.IsType(t, &memdb.DB{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("redis", func(t *testing.T) {
		srv := miniredis.RunT(t)
		conf := core.NewTestConfig()
		conf.Store.Engine = core.StoreRedis
		conf.Store.RedisAddr = srv.Addr()

		store, closeFn, err := Open(ctx, conf)
		require.NoError(t, err)
		assert.IsType(t, &redisdb.DB{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("unknown", func(t *testing.T) {
		conf := core.NewTestConfig()
		conf.Store.Engine = "cassandra"
		_, _, err := Open(ctx, conf)
		assert.EqualError(t, err, `unknown store engine "cassandra"`)
	})
}
