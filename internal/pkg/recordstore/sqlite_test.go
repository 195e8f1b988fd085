//go:build unit

package recordstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "flights.db")

	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)

	arrivals, departures := sampleRecords()
	require.NoError(t, store.AppendBatch(ctx, arrivals[:1], departures))
	require.NoError(t, store.AppendBatch(ctx, arrivals[1:], nil))
	require.NoError(t, store.Save(ctx))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.List(ctx, dto.KindArrival)
	require.NoError(t, err)
	if diff := cmp.Diff(arrivals, got); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}

	n, err := reopened.Len(ctx, dto.KindDeparture)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = reopened.List(ctx, dto.RecordKind("other"))
	assert.Error(t, err)
}

func TestSQLiteStore_EmptyList(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()

	got, err := store.List(context.Background(), dto.KindDeparture)
	require.NoError(t, err)
	assert.Equal(t, []dto.FlightRecord{}, got)
}
