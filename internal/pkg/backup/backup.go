package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

const timestampLayout = "20060102T150405"

type Exporter interface {
	Export(ctx context.Context, req dto.ExportRequest) (dto.ExportResult, error)
}

// Scheduler writes periodic exports into Dir, one timestamped file per run.
type Scheduler struct {
	Dir      string
	Format   dto.ExportFormat
	exporter Exporter
	cron     *cron.Cron
	now      func() time.Time
}

func New(exporter Exporter, dir string, format dto.ExportFormat) *Scheduler {
	return &Scheduler{
		Dir:      dir,
		Format:   format,
		exporter: exporter,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Start runs a backup every interval until Stop.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("backup interval must be positive, got %s", interval)
	}

	spec := fmt.Sprintf("@every %s", interval)

	err := s.cron.AddFunc(spec, func() {
		path, err := s.RunOnce(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "backup failed", slog.String("error", err.Error()))
			return
		}
		slog.InfoContext(ctx, "backup written", slog.String("path", path))
	})
	if err != nil {
		return fmt.Errorf("schedule backup %q: %w", spec, err)
	}

	s.cron.Start()
	slog.InfoContext(ctx, "backup scheduled",
		slog.String("spec", spec),
		slog.String("dir", s.Dir),
		slog.String("format", string(s.Format)))

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce exports the store and writes it under Dir, returning the path.
func (s *Scheduler) RunOnce(ctx context.Context) (string, error) {
	result, err := s.exporter.Export(ctx, dto.ExportRequest{Format: s.Format})
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	ext := filepath.Ext(result.FileName)
	name := fmt.Sprintf("%s_%s%s", strings.TrimSuffix(result.FileName, ext), s.now().Format(timestampLayout), ext)

	return WriteFile(s.Dir, name, result.Content)
}

// WriteFile writes content to dir/name through a temporary file and returns
// the final path.
func WriteFile(dir, name string, content []byte) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}

	return path, nil
}
