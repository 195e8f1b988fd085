//go:build unit

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flight"
)

type fakeImporter struct {
	mu    sync.Mutex
	files []string
	err   error
}

func (f *fakeImporter) Import(_ context.Context, req dto.ImportRequest, _ flight.OverrideRequester) (dto.ImportSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.files = append(f.files, req.FileName+":"+string(req.Content))
	if f.err != nil {
		return dto.ImportSummary{}, f.err
	}

	return dto.ImportSummary{FileName: req.FileName, Log: []string{"Starting import of " + req.FileName + "..."}}, nil
}

func (f *fakeImporter) imported() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.files...)
}

func supportsJSON(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}

func TestWatcher_ImportFile(t *testing.T) {
	importFileRequest := func(importErr error, wantDir string, wantLog string) func(t *testing.T) {
		return func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "arrivals.json")
			require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

			importer := &fakeImporter{err: importErr}
			w := New(dir, importer, nil, supportsJSON)
			require.NoError(t, w.prepare())

			err := w.ImportFile(context.Background(), path)
			assert.Equal(t, importErr, err)

			assert.NoFileExists(t, path)
			assert.FileExists(t, filepath.Join(dir, wantDir, "arrivals.json"))

			log, err := os.ReadFile(filepath.Join(dir, wantDir, "arrivals.json.log"))
			require.NoError(t, err)
			assert.Equal(t, wantLog+"\n", string(log))
		}
	}

	t.Run("processed", importFileRequest(nil, ProcessedDir, "Starting import of arrivals.json..."))
	t.Run("failed", importFileRequest(errors.New("unsupported file format"), FailedDir, "unsupported file format"))
}

func TestWatcher_ImportFile_Missing(t *testing.T) {
	w := New(t.TempDir(), &fakeImporter{}, nil, supportsJSON)

	assert.NoError(t, w.ImportFile(context.Background(), filepath.Join(w.Dir, "gone.json")))
}

func TestWatcher_Backfill(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("2"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.json"), []byte("3"), 0o600))

	importer := &fakeImporter{}
	w := New(dir, importer, nil, supportsJSON)

	require.NoError(t, w.Backfill(context.Background()))

	assert.Equal(t, []string{"a.json:1"}, importer.imported())
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.FileExists(t, filepath.Join(dir, ProcessedDir, "a.json"))
}

func TestWatcher_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	importer := &fakeImporter{}
	w := New(dir, importer, nil, supportsJSON)
	w.Settle = 50 * time.Millisecond

	require.NoError(t, w.Start(ctx))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drop.json"), []byte("[]"), 0o600))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, ProcessedDir, "drop.json"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, []string{"drop.json:[]"}, importer.imported())
}
