package xlsxsource

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource"
)

const Extension = ".xlsx"

// Decoder reads the first worksheet of a workbook. The first row is the
// header and every following row maps positionally, like the CSV decoder.
type Decoder struct {
	// SheetName overrides the first-sheet default when set.
	SheetName string
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Decode(content []byte) ([]dto.RawRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, flightsource.ErrMalformedContent.WithCause(fmt.Errorf("open workbook: %w", err))
	}
	defer f.Close()

	sheet := d.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return []dto.RawRecord{}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, flightsource.ErrMalformedContent.WithCause(fmt.Errorf("read sheet %s: %w", sheet, err))
	}

	if len(rows) == 0 {
		return []dto.RawRecord{}, nil
	}

	return flightsource.MapPositional(rows[0], rows[1:]), nil
}
