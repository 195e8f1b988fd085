//go:build unit

package flight

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	n := NewNormalizer()
	n.Now = func() time.Time { return time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC) }
	n.Location = time.UTC
	return n
}

func TestNormalizer_Normalize(t *testing.T) {
	_ = dto.InitValidator()

	normalizeRequest := func(raw dto.RawRecord, want dto.FlightRecord, wantOK bool, wantLog []string) func(t *testing.T) {
		return func(t *testing.T) {
			var runLog RunLog
			got, ok := newTestNormalizer().Normalize(raw, &runLog)
			if ok != wantOK {
				t.Fatalf("Normalize() ok = %v, want %v", ok, wantOK)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(wantLog, runLog.Lines()); diff != "" {
				t.Fatalf("Normalize() log mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("canonical_keys", normalizeRequest(dto.RawRecord{
		"companhia": "TAP", "cidade": "Lisbon", "icao": "LPPT", "pais": "Portugal",
		"voo": "123", "horario": "14:00", "aeronave": "A320", "status": "Landed", "tps": "2",
	}, dto.FlightRecord{
		Companhia: "TAP", Cidade: "Lisbon", ICAO: "LPPT", Pais: "Portugal",
		Voo: "123", Horario: "14:00", Aeronave: "A320", Status: "Landed", TPS: "2",
		Frequencia: 1, DataCadastro: "2024-06-01T10:30:00.000Z",
	}, true, []string{}))

	t.Run("uppercase_aliases_and_default_status", normalizeRequest(dto.RawRecord{
		"AIRLINE": "VARESH AIRLINES", "DESTINATION": "MASHHAD", "ICAO": "OIMM",
		"COUNTRY": "IRAN", "FLIGHT": float64(5820), "TIME": "21:40", "A/C": "MD83", "TPS": float64(4),
	}, dto.FlightRecord{
		Companhia: "VARESH AIRLINES", Cidade: "MASHHAD", ICAO: "OIMM", Pais: "IRAN",
		Voo: "5820", Horario: "21:40", Aeronave: "MD83", Status: "Scheduled", TPS: "4",
		Frequencia: 1, DataCadastro: "2024-06-01T10:30:00.000Z",
	}, true, []string{}))

	t.Run("alias_priority_skips_empty", normalizeRequest(dto.RawRecord{
		"companhia": "", "airline": "Delta", "Airline": "ignored",
		"city": "NYC", "flight_no": "DL1", "actual_time": "2024-06-01T08:00:00",
		"terminal": "T4", "gate": "B2",
	}, dto.FlightRecord{
		Companhia: "Delta", Cidade: "NYC", Voo: "DL1", Horario: "08:00", TPS: "T4",
		Status: "Scheduled", Frequencia: 1, DataCadastro: "2024-06-01T10:30:00.000Z",
	}, true, []string{}))

	t.Run("spreadsheet_pascal_case", normalizeRequest(dto.RawRecord{
		"Airline": "Qeshm Air", "Destination": "Kish", "FlightNumber": "1200", "Aircraft": "A306",
	}, dto.FlightRecord{
		Companhia: "Qeshm Air", Cidade: "Kish", Voo: "1200", Aeronave: "A306",
		Status: "Scheduled", Frequencia: 1, DataCadastro: "2024-06-01T10:30:00.000Z",
	}, true, []string{}))

	t.Run("missing_cidade_rejected", normalizeRequest(dto.RawRecord{
		"airline": "Delta", "voo": "10",
	}, dto.FlightRecord{}, false, []string{`Record skipped - companhia: "Delta", cidade: ""`}))

	t.Run("missing_companhia_rejected", normalizeRequest(dto.RawRecord{
		"cidade": "Lisbon",
	}, dto.FlightRecord{}, false, []string{`Record skipped - companhia: "", cidade: "Lisbon"`}))

	t.Run("falsy_values_are_absent", normalizeRequest(dto.RawRecord{
		"companhia": false, "airline": "Azul", "cidade": nil, "city": "Recife", "voo": float64(0),
	}, dto.FlightRecord{
		Companhia: "Azul", Cidade: "Recife",
		Status: "Scheduled", Frequencia: 1, DataCadastro: "2024-06-01T10:30:00.000Z",
	}, true, []string{}))
}

func TestResolve(t *testing.T) {
	alias := FieldAlias{Field: "status", Aliases: []string{"status", "STATUS"}, Default: "Scheduled"}

	assert.Equal(t, "Delayed", Resolve(dto.RawRecord{"STATUS": "Delayed"}, alias))
	assert.Equal(t, "Scheduled", Resolve(dto.RawRecord{"Estado": "Delayed"}, alias))
	assert.Equal(t, "Scheduled", Resolve(dto.RawRecord{"status": map[string]any{"x": 1}}, alias))
}

func TestArrivalAliases_FieldsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, alias := range ArrivalAliases {
		assert.False(t, seen[alias.Field], alias.Field)
		seen[alias.Field] = true
		assert.NotEmpty(t, alias.Aliases)
		assert.Equal(t, alias.Field, alias.Aliases[0], "canonical key first")
	}
	assert.Len(t, seen, 9)
}
