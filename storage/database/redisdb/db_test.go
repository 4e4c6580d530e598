package redisdb

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/record"
)

func TestDB(t *testing.T) {
	srv := miniredis.RunT(t)
	db := New(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	defer db.Close()
	ctx := context.Background()

	_, found, err := db.Read(ctx, "portalAccounts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.Write(ctx, "portalAccounts", []byte(`[]`)))
	val, found, err := db.Read(ctx, "portalAccounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(val))

	require.NoError(t, db.Remove(ctx, "portalAccounts"))
	assert.False(t, srv.Exists("portalAccounts"))
}

func TestDB_ScopedKeys(t *testing.T) {
	srv := miniredis.RunT(t)
	db := New(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	defer db.Close()
	ctx := context.Background()

	store := record.Scope(db, "p1")
	require.NoError(t, record.WriteJSON(ctx, store, "fees_alice", []string{"fee-1"}))

	got, err := srv.Get("profile:p1:fees_alice")
	require.NoError(t, err)
	assert.Equal(t, `["fee-1"]`, got)
}

func TestOpen(t *testing.T) {
	srv := miniredis.RunT(t)
	conf := core.NewTestConfig()
	conf.Store.RedisAddr = srv.Addr()

	db, err := Open(context.Background(), conf)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
