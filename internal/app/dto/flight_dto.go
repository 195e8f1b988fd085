package dto

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/exception"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ImportRequest carries one uploaded file. Overrides maps a flight reference
// to an operator supplied departure time.
type ImportRequest struct {
	FileName  string            `json:"file_name" validate:"required"`
	Content   []byte            `json:"-"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

func (r *ImportRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *ImportRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	for flightRef, hhmm := range r.Overrides {
		if !clockPattern.MatchString(hhmm) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Invalid override time %q for flight %s", hhmm, flightRef),
			}
		}
	}

	return nil
}

// ImportSummary reports the outcome of one import batch.
type ImportSummary struct {
	BatchID             string   `json:"batch_id"`
	FileName            string   `json:"file_name"`
	RecordsFound        int      `json:"records_found"`
	ArrivalsImported    int      `json:"arrivals_imported"`
	DeparturesGenerated int      `json:"departures_generated"`
	Rejected            int      `json:"rejected"`
	Saved               bool     `json:"saved"`
	Log                 []string `json:"log"`
}

// ExportFormat is the operator's export choice.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ParseExportFormat maps the operator choice ("1"/"2" or a name) to a format.
// Anything that is not a CSV choice falls back to JSON.
func ParseExportFormat(choice string) ExportFormat {
	switch choice {
	case "2", "csv", "CSV":
		return ExportCSV
	default:
		return ExportJSON
	}
}

type ExportRequest struct {
	Format ExportFormat `json:"format"`
}

// ExportResult is a fully serialized export ready to be written.
type ExportResult struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
	Arrivals    int    `json:"arrivals"`
	Departures  int    `json:"departures"`
	Log         string `json:"log"`
}

type FilterOption struct {
	Companhia *string `json:"companhia,omitempty"`
	TimeStart *string `json:"time_start,omitempty"`
	TimeEnd   *string `json:"time_end,omitempty"`
}

type ListRecordsRequest struct {
	Kind         RecordKind    `json:"kind" validate:"required,oneof=chegada partida"`
	FilterOption *FilterOption `json:"filter_option,omitempty"`
}

func (r *ListRecordsRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if r.FilterOption != nil {
		if (r.FilterOption.TimeStart == nil) != (r.FilterOption.TimeEnd == nil) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "time_start and time_end must be given together",
			}
		}

		if r.FilterOption.TimeStart != nil &&
			(!clockPattern.MatchString(*r.FilterOption.TimeStart) || !clockPattern.MatchString(*r.FilterOption.TimeEnd)) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "time_start and time_end must be HH:MM",
			}
		}
	}

	return nil
}

type ListRecordsResponse struct {
	Kind    RecordKind     `json:"kind"`
	Total   int            `json:"total"`
	Records []FlightRecord `json:"records"`
}
