package record_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/storage/database/memdb"
)

type item struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

func TestScope(t *testing.T) {
	ctx := context.Background()
	db := memdb.Open()
	alice := record.Scope(db, "alice")
	bob := record.Scope(db, "bob")

	require.NoError(t, alice.Write(ctx, "portalUser", []byte(`"a"`)))

	_, found, err := bob.Read(ctx, "portalUser")
	require.NoError(t, err)
	assert.False(t, found)

	raw, found, err := db.Read(ctx, "profile:alice:portalUser")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"a"`, string(raw))

	require.NoError(t, alice.Remove(ctx, "portalUser"))
	_, found, _ = alice.Read(ctx, "portalUser")
	assert.False(t, found)
}

func TestReadJSON(t *testing.T) {
	ctx := context.Background()
	db := memdb.Open()

	var it item
	found, err := record.ReadJSON(ctx, db, "missing", &it)
	require.NoError(t, err)
	assert.False(t, found)

	_ = db.Write(ctx, "broken", []byte(`{"id":`))
	found, err = record.ReadJSON(ctx, db, "broken", &it)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, record.WriteJSON(ctx, db, "ok", item{ID: 3, Status: "paid"}))
	found, err = record.ReadJSON(ctx, db, "ok", &it)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, item{ID: 3, Status: "paid"}, it)
}

func TestReadList(t *testing.T) {
	ctx := context.Background()
	db := memdb.Open()
	_ = db.Write(ctx, "notjson", []byte("{{{"))
	_ = db.Write(ctx, "object", []byte(`{"id":1}`))
	_ = db.Write(ctx, "null", []byte(`null`))
	_ = db.Write(ctx, "wrongtype", []byte(`[1, 2]`))
	_ = db.Write(ctx, "list", []byte(`[{"id":1,"status":"pending"},{"id":2,"status":"paid"}]`))

	for _, key := range []string{"missing", "notjson", "object", "null", "wrongtype"} {
		t.Run(key, func(t *testing.T) {
			list, err := record.ReadList[item](ctx, db, key)
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}

	list, err := record.ReadList[item](ctx, db, "list")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1, Status: "pending"}, {ID: 2, Status: "paid"}}, list)
}
