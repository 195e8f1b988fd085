package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flight"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/logger"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/override"
)

// RecordStore holds arrivals and departures in insertion order. Save is the
// persistence hook run after every import batch.
type RecordStore interface {
	AppendBatch(ctx context.Context, arrivals, departures []dto.FlightRecord) error
	Len(ctx context.Context, kind dto.RecordKind) (int, error)
	List(ctx context.Context, kind dto.RecordKind) ([]dto.FlightRecord, error)
	Save(ctx context.Context) error
}

type ImportService struct {
	Decoders   *flightsource.DecoderFactory
	Store      RecordStore
	Normalizer *flight.Normalizer
	Generator  *flight.DepartureGenerator
	NewBatchID func() string

	// one batch at a time, so override prompts never interleave
	mu sync.Mutex
}

func NewImportService(decoders *flightsource.DecoderFactory,
	store RecordStore, generator *flight.DepartureGenerator) *ImportService {
	return &ImportService{
		Decoders:   decoders,
		Store:      store,
		Normalizer: flight.NewNormalizer(),
		Generator:  generator,
		NewBatchID: func() string { return uuid.New().String() },
	}
}

// Import decodes one file, normalizes every record into an arrival and
// derives its departure. Overrides carried by the request are asked before
// requester. A decode error aborts the batch before anything is stored.
//
// Import godoc
// @Summary      Import arrivals
// @Tags         Flights
// @Description  Import a .json, .csv or .xlsx arrival file and generate departures
// @Accept       multipart/form-data
// @Param        file       formData  file    true   "Arrival file"
// @Param        overrides  formData  string  false  "JSON object of flight number to HH:MM"
// @Success      200      {object}  dto.ImportSummary
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      415      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/import [post]
func (s *ImportService) Import(ctx context.Context,
	req dto.ImportRequest,
	requester flight.OverrideRequester,
) (dto.ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := dto.ImportSummary{
		BatchID:  s.NewBatchID(),
		FileName: req.FileName,
	}
	ctx = logger.WithBatchID(ctx, summary.BatchID)

	if len(req.Overrides) > 0 {
		requester = override.Chain{override.NewTable(req.Overrides), requester}
	}

	runLog := &flight.RunLog{}
	runLog.Addf("Starting import of %s...", req.FileName)

	raws, err := s.Decoders.Decode(req.FileName, req.Content)
	if err != nil {
		slog.WarnContext(ctx, "import aborted",
			slog.String("file", req.FileName),
			slog.String("error", err.Error()))
		return dto.ImportSummary{}, fmt.Errorf("failed to decode %s: %w", req.FileName, err)
	}

	summary.RecordsFound = len(raws)
	runLog.Addf("%s file processed: %d records found", fileLabel(req.FileName), len(raws))

	arrivals := make([]dto.FlightRecord, 0, len(raws))
	departures := make([]dto.FlightRecord, 0, len(raws))

	for _, raw := range raws {
		arrival, ok := s.Normalizer.Normalize(raw, runLog)
		if !ok {
			summary.Rejected++
			continue
		}
		arrivals = append(arrivals, arrival)

		departure, ok := s.Generator.Generate(ctx, arrival, requester, runLog)
		if ok {
			departures = append(departures, departure)
		}
	}

	summary.ArrivalsImported = len(arrivals)
	summary.DeparturesGenerated = len(departures)

	runLog.Addf("Processing completed:")
	runLog.Addf("- %d arrivals imported", len(arrivals))
	runLog.Addf("- %d departures generated automatically", len(departures))

	if err := s.Store.AppendBatch(ctx, arrivals, departures); err != nil {
		return dto.ImportSummary{}, ErrStoreFailure.WithCause(err)
	}

	if err := s.Store.Save(ctx); err != nil {
		runLog.Addf("Data could not be saved: %s", err)
		slog.ErrorContext(ctx, "failed to save store", slog.String("error", err.Error()))
	} else {
		summary.Saved = true
	}

	summary.Log = runLog.Lines()

	slog.InfoContext(ctx, "import completed",
		slog.String("file", req.FileName),
		slog.Int("records_found", summary.RecordsFound),
		slog.Int("arrivals", summary.ArrivalsImported),
		slog.Int("departures", summary.DeparturesGenerated),
		slog.Int("rejected", summary.Rejected),
		slog.Bool("saved", summary.Saved))

	return summary, nil
}

func fileLabel(fileName string) string {
	return strings.ToUpper(strings.TrimPrefix(filepath.Ext(fileName), "."))
}
