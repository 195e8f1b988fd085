package flight

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// FilterRecords keeps records matching every set option. Records keep their
// store order.
func FilterRecords(ctx context.Context, records []dto.FlightRecord, filterOpts *dto.FilterOption) []dto.FlightRecord {
	if filterOpts == nil {
		return records
	}

	results := make([]dto.FlightRecord, 0, len(records))

	for _, record := range records {
		if filterOpts.Companhia != nil &&
			!strings.Contains(strings.ToUpper(record.Companhia), strings.ToUpper(*filterOpts.Companhia)) {
			continue
		}

		if filterOpts.TimeStart != nil && filterOpts.TimeEnd != nil {
			if !isWithinTimeRange(ctx, record.Horario, *filterOpts.TimeStart, *filterOpts.TimeEnd) {
				continue
			}
		}

		results = append(results, record)
	}

	return results
}

// all three values are wall-clock HH:MM; a window whose end is before its
// start wraps across midnight, e.g. 22:00-02:00
func isWithinTimeRange(ctx context.Context, targetTime string, startTime string, endTime string) bool {
	if !IsClockTime(targetTime) {
		return false
	}

	targetParsed, err := time.Parse("15:04", targetTime)
	if err != nil {
		return false
	}

	startParsed, err := time.Parse("15:04", startTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse start time", slog.String("time", startTime), slog.Any("error", err))
		return false
	}

	endParsed, err := time.Parse("15:04", endTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse end time", slog.String("time", endTime), slog.Any("error", err))
		return false
	}

	if !endParsed.Before(startParsed) {
		return !targetParsed.Before(startParsed) && !targetParsed.After(endParsed)
	}

	return !targetParsed.Before(startParsed) || !targetParsed.After(endParsed)
}
