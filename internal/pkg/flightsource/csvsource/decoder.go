package csvsource

import (
	"regexp"
	"strings"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flightsource"
)

const Extension = ".csv"

var lineBreak = regexp.MustCompile(`\r?\n`)

// Decoder reads comma separated text with a header line. Fields are split on
// every raw comma: quoting and embedded commas are not supported, so a value
// containing a comma shifts the remaining columns of its row.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Decode(content []byte) ([]dto.RawRecord, error) {
	lines := lineBreak.Split(strings.TrimSpace(string(flightsource.TrimBOM(content))), -1)

	header := strings.Split(lines[0], ",")

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.Split(line, ","))
	}

	return flightsource.MapPositional(header, rows), nil
}
