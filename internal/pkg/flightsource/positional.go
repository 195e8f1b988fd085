package flightsource

import (
	"strings"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// MapPositional maps each row onto header by column position. Missing cells
// become empty strings and every value is trimmed.
func MapPositional(header []string, rows [][]string) []dto.RawRecord {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.TrimSpace(h)
	}

	records := make([]dto.RawRecord, 0, len(rows))
	for _, row := range rows {
		record := make(dto.RawRecord, len(keys))
		for idx, key := range keys {
			value := ""
			if idx < len(row) {
				value = strings.TrimSpace(row[idx])
			}
			record[key] = value
		}
		records = append(records, record)
	}

	return records
}
