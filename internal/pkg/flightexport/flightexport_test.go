//go:build unit

package flightexport

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

var exportTime = time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

func TestSerialize(t *testing.T) {
	serializeRequest := func(format dto.ExportFormat, arrivals, departures []dto.FlightRecord,
		wantFile, wantType, wantContent string,
	) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := Serialize(format, arrivals, departures, exportTime)
			require.NoError(t, err)

			assert.Equal(t, wantFile, got.FileName)
			assert.Equal(t, wantType, got.ContentType)
			assert.Equal(t, len(arrivals), got.Arrivals)
			assert.Equal(t, len(departures), got.Departures)
			if diff := cmp.Diff(wantContent, string(got.Content)); diff != "" {
				t.Fatalf("Serialize() content mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("empty_json", serializeRequest(dto.ExportJSON, nil, nil,
		"voos_backup.json", "application/json",
		"{\n  \"chegadas\": [],\n  \"partidas\": [],\n  \"dataExport\": \"2024-03-10T08:30:00.000Z\",\n  \"versao\": \"1.0\"\n}"))

	t.Run("empty_csv", serializeRequest(dto.ExportCSV, nil, nil,
		"voos_backup.csv", "text/csv",
		"companhia,voo,cidade,icao,pais,horario,aeronave,status,tps,tipo"))

	t.Run("csv_comma_replaced", serializeRequest(dto.ExportCSV,
		[]dto.FlightRecord{{Companhia: "Delta", Cidade: "New York, NY", Voo: "77", Horario: "09:00", Status: "Scheduled"}},
		[]dto.FlightRecord{{Companhia: "Delta", Cidade: "New York, NY", Voo: "78", Horario: "11:00", Status: "Scheduled"}},
		"voos_backup.csv", "text/csv",
		"companhia,voo,cidade,icao,pais,horario,aeronave,status,tps,tipo\n"+
			"Delta,77,New York; NY,,,09:00,,Scheduled,,chegada\n"+
			"Delta,78,New York; NY,,,11:00,,Scheduled,,partida"))
}

func TestSerialize_Log(t *testing.T) {
	got, err := Serialize(dto.ExportFormat("xml"), []dto.FlightRecord{{}}, nil, exportTime)
	require.NoError(t, err)

	assert.Equal(t, "voos_backup.json", got.FileName)
	assert.True(t, strings.Contains(got.Log, "JSON export: 1 arrivals + 0 departures"))
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	confirmed := "10:05"
	arrivals := []dto.FlightRecord{{
		Companhia: "TAP", Cidade: "Lisbon", ICAO: "LPPT", Pais: "Portugal", Voo: "123",
		Horario: "14:00", Aeronave: "A320", Status: "Landed", TPS: "T1",
		HorarioConfirmado: &confirmed, Frequencia: 1, DataCadastro: "2024-03-10T08:00:00.000Z",
	}}

	content, err := EncodeJSON(arrivals, nil, exportTime)
	require.NoError(t, err)

	var doc dto.ExportDocument
	require.NoError(t, json.Unmarshal(content, &doc))

	want := dto.ExportDocument{
		Chegadas:   arrivals,
		Partidas:   []dto.FlightRecord{},
		DataExport: "2024-03-10T08:30:00.000Z",
		Versao:     "1.0",
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
