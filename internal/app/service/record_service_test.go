//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

func TestRecordService_Export(t *testing.T) {
	exportRequest := func(
		req dto.ExportRequest,
		setupMock func(m *MockRecordStore),
		wantFile string,
		wantContent string,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRecordStore(t)
			setupMock(m)

			s := NewRecordService(m)
			s.Now = func() time.Time { return time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC) }

			got, err := s.Export(context.Background(), req)
			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, wantFile, got.FileName)
			if diff := cmp.Diff(wantContent, string(got.Content)); diff != "" {
				t.Fatalf("Export() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	arrivals := []dto.FlightRecord{record("Delta", "NYC", "", "77", "09:00", "", "Landed")}
	departures := []dto.FlightRecord{record("Delta", "NYC", "", "78", "12:00", "", "Scheduled")}

	t.Run("csv", exportRequest(dto.ExportRequest{Format: dto.ExportCSV},
		func(m *MockRecordStore) {
			m.On("List", mock.Anything, dto.KindArrival).Return(arrivals, nil)
			m.On("List", mock.Anything, dto.KindDeparture).Return(departures, nil)
		},
		"voos_backup.csv",
		"companhia,voo,cidade,icao,pais,horario,aeronave,status,tps,tipo\n"+
			"Delta,77,NYC,,,09:00,,Landed,,chegada\n"+
			"Delta,78,NYC,,,12:00,,Scheduled,,partida",
		nil,
	))

	t.Run("empty_json", exportRequest(dto.ExportRequest{Format: dto.ParseExportFormat("")},
		func(m *MockRecordStore) {
			m.On("List", mock.Anything, dto.KindArrival).Return([]dto.FlightRecord{}, nil)
			m.On("List", mock.Anything, dto.KindDeparture).Return([]dto.FlightRecord{}, nil)
		},
		"voos_backup.json",
		"{\n  \"chegadas\": [],\n  \"partidas\": [],\n  \"dataExport\": \"2024-06-02T00:00:00.000Z\",\n  \"versao\": \"1.0\"\n}",
		nil,
	))

	t.Run("store_failure", exportRequest(dto.ExportRequest{Format: dto.ExportJSON},
		func(m *MockRecordStore) {
			m.On("List", mock.Anything, dto.KindArrival).Return(nil, errors.New("connection reset"))
		},
		"", "", ErrStoreFailure,
	))
}

func TestRecordService_ListRecords(t *testing.T) {
	listRequest := func(
		req dto.ListRecordsRequest,
		stored []dto.FlightRecord,
		want dto.ListRecordsResponse,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRecordStore(t)
			m.On("List", mock.Anything, req.Kind).Return(stored, nil)

			got, err := NewRecordService(m).ListRecords(context.Background(), req)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ListRecords() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	tap := record("TAP", "Lisbon", "LPPT", "124", "15:00", "A320", "Scheduled")
	delta := record("Delta", "NYC", "", "78", "23:30", "", "Scheduled")
	airline := "tap"
	start, end := "23:00", "01:00"

	t.Run("unfiltered", listRequest(
		dto.ListRecordsRequest{Kind: dto.KindDeparture},
		[]dto.FlightRecord{tap, delta},
		dto.ListRecordsResponse{Kind: dto.KindDeparture, Total: 2, Records: []dto.FlightRecord{tap, delta}},
	))

	t.Run("by_airline", listRequest(
		dto.ListRecordsRequest{Kind: dto.KindDeparture, FilterOption: &dto.FilterOption{Companhia: &airline}},
		[]dto.FlightRecord{tap, delta},
		dto.ListRecordsResponse{Kind: dto.KindDeparture, Total: 1, Records: []dto.FlightRecord{tap}},
	))

	t.Run("window_across_midnight", listRequest(
		dto.ListRecordsRequest{Kind: dto.KindDeparture, FilterOption: &dto.FilterOption{TimeStart: &start, TimeEnd: &end}},
		[]dto.FlightRecord{tap, delta},
		dto.ListRecordsResponse{Kind: dto.KindDeparture, Total: 1, Records: []dto.FlightRecord{delta}},
	))
}
