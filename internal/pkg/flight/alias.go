package flight

import (
	"strconv"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// FieldAlias lists the accepted input keys for one canonical field, highest
// priority first.
type FieldAlias struct {
	Field   string
	Aliases []string
	Default string
}

// ArrivalAliases is the alias table for the canonical arrival record. The
// PascalCase keys at the tail of some lists (Destination, FlightNumber,
// Aircraft) come from spreadsheet exports and widen the accepted input: a
// record carrying only companhia and Destination passes the mandatory field
// check.
var ArrivalAliases = []FieldAlias{
	{Field: "companhia", Aliases: []string{"companhia", "airline", "AIRLINE", "Airline"}},
	{Field: "cidade", Aliases: []string{"cidade", "destination", "DESTINATION", "city", "CITY", "Destination"}},
	{Field: "icao", Aliases: []string{"icao", "ICAO", "airport_code"}},
	{Field: "pais", Aliases: []string{"pais", "country", "COUNTRY", "Country"}},
	{Field: "voo", Aliases: []string{"voo", "flight_no", "flight", "FLIGHT", "Flight", "FlightNumber"}},
	{Field: "horario", Aliases: []string{"horario", "actual_time", "time", "TIME", "Time"}},
	{Field: "aeronave", Aliases: []string{"aeronave", "ac_type", "aircraft", "A/C", "AC", "Aircraft"}},
	{Field: "status", Aliases: []string{"status", "STATUS", "Status"}, Default: dto.DefaultStatus},
	{Field: "tps", Aliases: []string{"tps", "terminal", "gate", "TPS", "Terminal"}},
}

// Resolve returns the first non-empty value found under the alias keys, or
// the alias default.
func Resolve(raw dto.RawRecord, alias FieldAlias) string {
	for _, key := range alias.Aliases {
		if v := scalarText(raw[key]); v != "" {
			return v
		}
	}

	return alias.Default
}

// ResolveAll applies every entry of table to raw.
func ResolveAll(raw dto.RawRecord, table []FieldAlias) map[string]string {
	resolved := make(map[string]string, len(table))
	for _, alias := range table {
		resolved[alias.Field] = Resolve(raw, alias)
	}

	return resolved
}

// scalarText renders a JSON scalar as text. Falsy scalars (empty string, zero,
// false, null) and non-scalars count as absent.
func scalarText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		if val == 0 {
			return ""
		}
		return strconv.Itoa(val)
	case bool:
		if !val {
			return ""
		}
		return "true"
	default:
		return ""
	}
}
