//go:build unit

package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

type fakeExporter struct {
	calls  atomic.Int32
	format dto.ExportFormat
	err    error
}

func (f *fakeExporter) Export(_ context.Context, req dto.ExportRequest) (dto.ExportResult, error) {
	f.calls.Add(1)
	f.format = req.Format
	if f.err != nil {
		return dto.ExportResult{}, f.err
	}

	return dto.ExportResult{FileName: "voos_backup.csv", Content: []byte("companhia")}, nil
}

func TestScheduler_RunOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	exporter := &fakeExporter{}

	s := New(exporter, dir, dto.ExportCSV)
	s.now = func() time.Time { return time.Date(2024, 6, 1, 22, 5, 9, 0, time.UTC) }

	path, err := s.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "voos_backup_20240601T220509.csv"), path)
	assert.Equal(t, dto.ExportCSV, exporter.format)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "companhia", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScheduler_RunOnce_ExportError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	s := New(&fakeExporter{err: errors.New("store down")}, dir, dto.ExportJSON)

	_, err := s.RunOnce(context.Background())
	assert.Error(t, err)
	assert.NoDirExists(t, dir)
}

func TestScheduler_Start(t *testing.T) {
	exporter := &fakeExporter{}
	s := New(exporter, t.TempDir(), dto.ExportJSON)

	require.NoError(t, s.Start(context.Background(), time.Second))
	defer s.Stop()

	assert.Eventually(t, func() bool { return exporter.calls.Load() > 0 }, 5*time.Second, 50*time.Millisecond)
}

func TestScheduler_StartInvalidInterval(t *testing.T) {
	s := New(&fakeExporter{}, t.TempDir(), dto.ExportJSON)

	assert.Error(t, s.Start(context.Background(), 0))
}
