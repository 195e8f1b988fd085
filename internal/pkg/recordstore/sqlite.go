package recordstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// SQLiteStore persists records as JSON payloads in one table; insertion
// order is the row id.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS flight_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_flight_records_kind ON flight_records(kind, id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// AppendBatch inserts the whole batch in one transaction.
func (s *SQLiteStore) AppendBatch(ctx context.Context, arrivals, departures []dto.FlightRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO flight_records(kind, payload, created_at) VALUES(?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	ts := s.now().UTC()
	insert := func(kind dto.RecordKind, records []dto.FlightRecord) error {
		for _, record := range records {
			payload, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("encode %s: %w", kind, err)
			}
			if _, err := stmt.ExecContext(ctx, string(kind), string(payload), ts); err != nil {
				return fmt.Errorf("insert %s: %w", kind, err)
			}
		}
		return nil
	}

	if err := insert(dto.KindArrival, arrivals); err != nil {
		return err
	}
	if err := insert(dto.KindDeparture, departures); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Len(ctx context.Context, kind dto.RecordKind) (int, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}

	var n int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flight_records WHERE kind=?`, string(kind))
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}

	return n, nil
}

func (s *SQLiteStore) List(ctx context.Context, kind dto.RecordKind) ([]dto.FlightRecord, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM flight_records WHERE kind=? ORDER BY id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	records := []dto.FlightRecord{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}

		var record dto.FlightRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (s *SQLiteStore) Save(context.Context) error {
	return nil
}
