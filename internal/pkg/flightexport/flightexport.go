package flightexport

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// BaseFileName is the export file name without extension.
const BaseFileName = "voos_backup"

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

// CSVHeader is the column order of the CSV export. "tipo" holds the record
// kind.
var CSVHeader = []string{"companhia", "voo", "cidade", "icao", "pais", "horario", "aeronave", "status", "tps", "tipo"}

// Serialize renders the store content in format. Content is built fully in
// memory; nothing is written.
func Serialize(format dto.ExportFormat, arrivals, departures []dto.FlightRecord, now time.Time) (dto.ExportResult, error) {
	var (
		result = dto.ExportResult{
			Arrivals:   len(arrivals),
			Departures: len(departures),
		}
		label string
		err   error
	)

	switch format {
	case dto.ExportCSV:
		label = "CSV"
		result.FileName = BaseFileName + ".csv"
		result.ContentType = ContentTypeCSV
		result.Content = EncodeCSV(arrivals, departures)
	default:
		label = "JSON"
		result.FileName = BaseFileName + ".json"
		result.ContentType = ContentTypeJSON
		result.Content, err = EncodeJSON(arrivals, departures, now)
		if err != nil {
			return dto.ExportResult{}, err
		}
	}

	result.Log = fmt.Sprintf("Starting export...\n%s export: %d arrivals + %d departures\nExport completed successfully!",
		label, len(arrivals), len(departures))

	return result, nil
}

// EncodeJSON renders the export document with two-space indentation. Nil
// collections are written as empty arrays.
func EncodeJSON(arrivals, departures []dto.FlightRecord, now time.Time) ([]byte, error) {
	if arrivals == nil {
		arrivals = []dto.FlightRecord{}
	}
	if departures == nil {
		departures = []dto.FlightRecord{}
	}

	content, err := json.MarshalIndent(dto.ExportDocument{
		Chegadas:   arrivals,
		Partidas:   departures,
		DataExport: now.UTC().Format(dto.ISOTimestampLayout),
		Versao:     dto.ExportVersion,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export document: %w", err)
	}

	return content, nil
}

// EncodeCSV renders arrivals then departures under CSVHeader. Values are not
// quoted; embedded commas become semicolons.
func EncodeCSV(arrivals, departures []dto.FlightRecord) []byte {
	rows := make([]string, 0, 1+len(arrivals)+len(departures))
	rows = append(rows, strings.Join(CSVHeader, ","))

	appendRows := func(kind dto.RecordKind, records []dto.FlightRecord) {
		for _, record := range records {
			cells := make([]string, len(CSVHeader))
			for i, column := range CSVHeader {
				if column == "tipo" {
					cells[i] = string(kind)
					continue
				}
				cells[i] = strings.ReplaceAll(record.Field(column), ",", ";")
			}
			rows = append(rows, strings.Join(cells, ","))
		}
	}

	appendRows(dto.KindArrival, arrivals)
	appendRows(dto.KindDeparture, departures)

	return []byte(strings.Join(rows, "\n"))
}
