package memdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_ReadWriteRemove(t *testing.T) {
	ctx := context.Background()
	db := Open()

	_, found, err := db.Read(ctx, "portalUser")
	require.NoError(t, err)
	assert.False(t, found)

	value := []byte(`{"userType":"student"}`)
	require.NoError(t, db.Write(ctx, "portalUser", value))
	value[0] = 'x' // callers may reuse their buffers

	got, found, err := db.Read(ctx, "portalUser")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"userType":"student"}`, string(got))

	require.NoError(t, db.Remove(ctx, "portalUser"))
	_, found, _ = db.Read(ctx, "portalUser")
	assert.False(t, found)
}

func TestDB_Keys(t *testing.T) {
	ctx := context.Background()
	db := Open()
	_ = db.Write(ctx, "profile:b:portalUser", []byte("{}"))
	_ = db.Write(ctx, "profile:a:portalUser", []byte("{}"))
	_ = db.Write(ctx, "profile:a:portalAccounts", []byte("[]"))

	assert.Equal(t, []string{"profile:a:portalAccounts", "profile:a:portalUser"}, db.Keys("profile:a:"))
	assert.Len(t, db.Keys(""), 3)
}
