package citystore

import (
	"database/sql"
	"testing"
	"time"

	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_NoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(snapshotsTable, schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// Set should silently succeed
	err = store.Set("raleigh-nc", []byte(`{"id":"raleigh-nc"}`), 1, time.Now().Unix())
	assert.NoError(t, err)

	// Get should report not found
	_, _, _, err = store.Get("raleigh-nc")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	err = store.Close()
	assert.NoError(t, err)
}

func TestSnapshotStore_SQLite(t *testing.T) {
	store, err := NewSnapshotStore(snapshotsTable, schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	doc := []byte(`{"id":"raleigh-nc","name":"Raleigh","state":"NC"}`)
	ts := time.Now().Unix()

	// Set and Get should round-trip
	err = store.Set("raleigh-nc", doc, 3, ts)
	require.NoError(t, err)

	value, version, fetchedAt, err := store.Get("raleigh-nc")
	require.NoError(t, err)
	assert.Equal(t, doc, value)
	assert.Equal(t, 3, version)
	assert.Equal(t, ts, fetchedAt)

	// Missing ID should report not found
	_, _, _, err = store.Get("nowhere-zz")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSnapshotStore_Upsert(t *testing.T) {
	store, err := NewSnapshotStore(snapshotsTable, schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ts := time.Now().Unix()
	err = store.Set("austin-tx", []byte(`{"v":1}`), 1, ts)
	require.NoError(t, err)

	// Second Set for the same ID should replace, not duplicate
	err = store.Set("austin-tx", []byte(`{"v":2}`), 2, ts+10)
	require.NoError(t, err)

	value, version, fetchedAt, err := store.Get("austin-tx")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, ts+10, fetchedAt)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalCities)
}

func TestSnapshotStore_GetStatus(t *testing.T) {
	store, err := NewSnapshotStore(snapshotsTable, schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Empty store
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalCities)

	// Two snapshots at different times
	oldTs := time.Now().Add(-time.Hour).Unix()
	newTs := time.Now().Unix()
	require.NoError(t, store.Set("old-city", []byte(`{}`), 1, oldTs))
	require.NoError(t, store.Set("new-city", []byte(`{}`), 1, newTs))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalCities)
	assert.Equal(t, oldTs, status.OldestSnapshot.Unix())
	assert.Equal(t, newTs, status.NewestSnapshot.Unix())
}

func TestSnapshotStore_InvalidTableName(t *testing.T) {
	_, err := NewSnapshotStore("bad; DROP TABLE", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)
}
