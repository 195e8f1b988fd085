package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flight"
)

type ImportService interface {
	Import(ctx context.Context, req dto.ImportRequest, requester flight.OverrideRequester) (dto.ImportSummary, error)
}

type RecordService interface {
	Export(ctx context.Context, req dto.ExportRequest) (dto.ExportResult, error)
	ListRecords(ctx context.Context, req dto.ListRecordsRequest) (dto.ListRecordsResponse, error)
}

type FlightEndpoint struct {
	Import      endpoint.Endpoint
	Export      endpoint.Endpoint
	ListRecords endpoint.Endpoint
}

func MakeFlightEndpoint(importService ImportService, recordService RecordService) FlightEndpoint {
	return FlightEndpoint{
		Import:      makeImportEndpoint(importService),
		Export:      makeExportEndpoint(recordService),
		ListRecords: makeListRecordsEndpoint(recordService),
	}
}

// HTTP imports have no operator at hand; override times come only from the
// request itself.
func makeImportEndpoint(service ImportService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ImportRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		summary, err := service.Import(ctx, *request, nil)
		if err != nil {
			return nil, fmt.Errorf("import service: %w", err)
		}

		return summary, nil
	}
}

func makeExportEndpoint(service RecordService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ExportRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Export(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("record service: %w", err)
		}

		return result, nil
	}
}

func makeListRecordsEndpoint(service RecordService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ListRecordsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		records, err := service.ListRecords(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("record service: %w", err)
		}

		return records, nil
	}
}
