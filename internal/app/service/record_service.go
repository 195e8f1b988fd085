package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flight"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightexport"
)

type RecordService struct {
	Store RecordStore
	Now   func() time.Time
}

func NewRecordService(store RecordStore) *RecordService {
	return &RecordService{
		Store: store,
		Now:   time.Now,
	}
}

// Export serializes every stored record in the requested format.
//
// Export godoc
// @Summary      Export flights
// @Tags         Flights
// @Description  Download arrivals and departures as JSON (default) or CSV
// @Param        format   query     string  false  "1, 2, json or csv"
// @Success      200
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/export [get]
func (s *RecordService) Export(ctx context.Context, req dto.ExportRequest) (dto.ExportResult, error) {
	arrivals, err := s.Store.List(ctx, dto.KindArrival)
	if err != nil {
		return dto.ExportResult{}, ErrStoreFailure.WithCause(err)
	}

	departures, err := s.Store.List(ctx, dto.KindDeparture)
	if err != nil {
		return dto.ExportResult{}, ErrStoreFailure.WithCause(err)
	}

	result, err := flightexport.Serialize(req.Format, arrivals, departures, s.Now())
	if err != nil {
		return dto.ExportResult{}, ErrExportFailed.WithCause(err)
	}

	slog.InfoContext(ctx, "export completed",
		slog.String("file", result.FileName),
		slog.Int("arrivals", result.Arrivals),
		slog.Int("departures", result.Departures))

	return result, nil
}

// ListRecords returns the stored records of one kind, filtered.
//
// ListRecords godoc
// @Summary      List flights
// @Tags         Flights
// @Param        kind        path      string  true   "arrivals or departures"
// @Param        companhia   query     string  false  "airline substring"
// @Param        time_start  query     string  false  "HH:MM"
// @Param        time_end    query     string  false  "HH:MM"
// @Success      200      {object}  dto.ListRecordsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/{kind} [get]
func (s *RecordService) ListRecords(ctx context.Context, req dto.ListRecordsRequest) (dto.ListRecordsResponse, error) {
	records, err := s.Store.List(ctx, req.Kind)
	if err != nil {
		return dto.ListRecordsResponse{}, ErrStoreFailure.WithCause(fmt.Errorf("list %s: %w", req.Kind, err))
	}

	filtered := flight.FilterRecords(ctx, records, req.FilterOption)

	return dto.ListRecordsResponse{
		Kind:    req.Kind,
		Total:   len(filtered),
		Records: filtered,
	}, nil
}
