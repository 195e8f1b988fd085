//go:build unit

package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestImportRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req ImportRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	t.Run("valid_request", validateRequest(ImportRequest{FileName: "voos.json"}, false, ""))
	t.Run("valid_overrides", validateRequest(ImportRequest{
		FileName:  "voos.csv",
		Overrides: map[string]string{"201": "23:15"},
	}, false, ""))
	t.Run("missing_file_name", validateRequest(ImportRequest{}, true, "file_name is a required field"))
	t.Run("invalid_override_time", validateRequest(ImportRequest{
		FileName:  "voos.csv",
		Overrides: map[string]string{"201": "24:00"},
	}, true, `Invalid override time "24:00" for flight 201`))
}

func TestListRecordsRequest_Validate(t *testing.T) {
	_ = InitValidator()

	ptrString := func(s string) *string { return &s }

	validateRequest := func(req ListRecordsRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				assert.Equal(t, wantMsg, err.Error())
			}
		}
	}

	t.Run("arrivals", validateRequest(ListRecordsRequest{Kind: KindArrival}, false, ""))
	t.Run("unknown_kind", validateRequest(ListRecordsRequest{Kind: "pouso"}, true,
		"kind must be one of [chegada partida]"))
	t.Run("half_window", validateRequest(ListRecordsRequest{
		Kind:         KindDeparture,
		FilterOption: &FilterOption{TimeStart: ptrString("10:00")},
	}, true, "time_start and time_end must be given together"))
	t.Run("bad_window", validateRequest(ListRecordsRequest{
		Kind:         KindDeparture,
		FilterOption: &FilterOption{TimeStart: ptrString("10h"), TimeEnd: ptrString("12:00")},
	}, true, "time_start and time_end must be HH:MM"))
}

func TestMissingFields(t *testing.T) {
	_ = InitValidator()

	missingRequest := func(rec FlightRecord, want []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := MissingFields(rec)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("MissingFields() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("complete", missingRequest(FlightRecord{Companhia: "TAP", Cidade: "Lisbon"}, nil))
	t.Run("missing_cidade", missingRequest(FlightRecord{Companhia: "TAP"}, []string{"cidade"}))
	t.Run("missing_both", missingRequest(FlightRecord{}, []string{"companhia", "cidade"}))
}

func TestParseExportFormat(t *testing.T) {
	formatRequest := func(choice string, want ExportFormat) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, ParseExportFormat(choice))
		}
	}

	t.Run("one_is_json", formatRequest("1", ExportJSON))
	t.Run("two_is_csv", formatRequest("2", ExportCSV))
	t.Run("named_csv", formatRequest("csv", ExportCSV))
	t.Run("cancelled_is_json", formatRequest("", ExportJSON))
	t.Run("garbage_is_json", formatRequest("3", ExportJSON))
}

func TestFlightRecord_Field(t *testing.T) {
	rec := FlightRecord{Companhia: "TAP", Voo: "123", Frequencia: 1}
	assert.Equal(t, "TAP", rec.Field("companhia"))
	assert.Equal(t, "123", rec.Field("voo"))
	assert.Equal(t, "1", rec.Field("frequencia"))
	assert.Equal(t, "", rec.Field("tipo"))
}
