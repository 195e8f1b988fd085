package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// MemoryStore keeps records in insertion order. When SnapshotPath is set the
// records are loaded from it on open and rewritten on Save.
type MemoryStore struct {
	mu           sync.RWMutex
	arrivals     []dto.FlightRecord
	departures   []dto.FlightRecord
	snapshotPath string
	now          func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		arrivals:   []dto.FlightRecord{},
		departures: []dto.FlightRecord{},
		now:        time.Now,
	}
}

// OpenMemoryStore returns a store backed by the snapshot at path. A missing
// snapshot yields an empty store.
func OpenMemoryStore(path string) (*MemoryStore, error) {
	store := NewMemoryStore()
	store.snapshotPath = path

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc dto.ExportDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	if doc.Chegadas != nil {
		store.arrivals = doc.Chegadas
	}
	if doc.Partidas != nil {
		store.departures = doc.Partidas
	}

	slog.Info("snapshot loaded",
		slog.String("path", path),
		slog.Int("chegadas", len(store.arrivals)),
		slog.Int("partidas", len(store.departures)))

	return store, nil
}

func (s *MemoryStore) AppendBatch(_ context.Context, arrivals, departures []dto.FlightRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.arrivals = append(s.arrivals, arrivals...)
	s.departures = append(s.departures, departures...)

	return nil
}

func (s *MemoryStore) Len(_ context.Context, kind dto.RecordKind) (int, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if kind == dto.KindArrival {
		return len(s.arrivals), nil
	}

	return len(s.departures), nil
}

func (s *MemoryStore) List(_ context.Context, kind dto.RecordKind) ([]dto.FlightRecord, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if kind == dto.KindArrival {
		return copyRecords(s.arrivals), nil
	}

	return copyRecords(s.departures), nil
}

// Save writes the snapshot through a temporary file so readers never see a
// partial document. It is a no-op without a snapshot path.
func (s *MemoryStore) Save(ctx context.Context) error {
	if s.snapshotPath == "" {
		return nil
	}

	s.mu.RLock()
	doc := dto.ExportDocument{
		Chegadas:   copyRecords(s.arrivals),
		Partidas:   copyRecords(s.departures),
		DataExport: s.now().UTC().Format(dto.ISOTimestampLayout),
		Versao:     dto.ExportVersion,
	}
	s.mu.RUnlock()

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.snapshotPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.snapshotPath); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	slog.DebugContext(ctx, "snapshot saved", slog.String("path", s.snapshotPath))

	return nil
}
