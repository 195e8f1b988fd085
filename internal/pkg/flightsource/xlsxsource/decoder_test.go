//go:build unit

package xlsxsource

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf.Bytes()
}

func TestDecoder_Decode(t *testing.T) {
	decodeRequest := func(content []byte, want []dto.RawRecord, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := NewDecoder().Decode(content)
			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, wantErr)
				}
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Decode() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("first_sheet_positional", decodeRequest(buildWorkbook(t, "Arrivals", [][]any{
		{"Airline", "Destination", "FlightNumber", " Time "},
		{"Emirates", "Dubai", "201", "10:00"},
		{"TAP", "Lisbon"},
	}), []dto.RawRecord{
		{"Airline": "Emirates", "Destination": "Dubai", "FlightNumber": "201", "Time": "10:00"},
		{"Airline": "TAP", "Destination": "Lisbon", "FlightNumber": "", "Time": ""},
	}, nil))

	t.Run("empty_sheet", decodeRequest(buildWorkbook(t, "Sheet1", nil), []dto.RawRecord{}, nil))

	t.Run("not_a_workbook", decodeRequest([]byte("companhia,cidade"), nil, flightsource.ErrMalformedContent))
}
