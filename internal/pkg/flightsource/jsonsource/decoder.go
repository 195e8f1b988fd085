package jsonsource

import (
	"encoding/json"
	"fmt"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource"
)

const (
	Extension = ".json"

	// ArrivalsProperty is the wrapper property holding the arrivals array, as
	// written by the JSON export.
	ArrivalsProperty = "chegadas"
)

type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode accepts a bare array of records or an object whose "chegadas"
// property is an array.
func (d *Decoder) Decode(content []byte) ([]dto.RawRecord, error) {
	var document any

	if err := json.Unmarshal(flightsource.TrimBOM(content), &document); err != nil {
		return nil, flightsource.ErrMalformedContent.WithCause(fmt.Errorf("parse json: %w", err))
	}

	items, ok := d.arrivals(document)
	if !ok {
		return nil, flightsource.ErrInvalidShape
	}

	return d.recordsFromItems(items), nil
}

func (d *Decoder) arrivals(document any) ([]any, bool) {
	switch doc := document.(type) {
	case map[string]any:
		items, ok := doc[ArrivalsProperty].([]any)
		return items, ok
	case []any:
		return doc, true
	default:
		return nil, false
	}
}

// non-object items become empty records, which the normalizer rejects
func (d *Decoder) recordsFromItems(items []any) []dto.RawRecord {
	records := make([]dto.RawRecord, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			records[i] = dto.RawRecord{}
			continue
		}
		records[i] = dto.RawRecord(obj)
	}

	return records
}
