package flight

import (
	"fmt"
	"strings"

	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/utils"
)

// turnaround minutes per (special region, narrowbody)
const (
	TATSpecialNarrowbody = 60
	TATSpecialWidebody   = 120
	TATNormalNarrowbody  = 120
	TATNormalWidebody    = 180
)

// specialRegions are ICAO first letters with the shorter turnaround.
var specialRegions = map[string]bool{
	"O": true, "H": true, "V": true, "L": true, "U": true,
	"G": true, "D": true, "E": true, "F": true,
}

var narrowbodyAircraft = map[string]bool{
	"B722": true, "B731": true, "B732": true, "B733": true, "B734": true, "B735": true,
	"B736": true, "B737": true, "B738": true, "B739": true, "B73X": true,
	"A318": true, "A319": true, "A320": true, "A321": true,
	"E170": true, "E175": true, "E190": true, "E195": true,
	"MD81": true, "MD82": true, "MD83": true, "MD86": true, "MD87": true, "MD88": true,
	"MD89": true, "MD90": true,
	"AT72": true, "AT75": true, "AT76": true, "AT42": true, "AT43": true, "AT45": true, "AT46": true,
	"E110": true, "E120": true, "E135": true, "E140": true, "E145": true, "L410": true,
}

// TurnaroundRule is the classification behind a TAT value.
type TurnaroundRule struct {
	ICAO          string
	Aircraft      string
	SpecialRegion bool
	Narrowbody    bool
	Minutes       int
}

// String describes the rule, e.g. "ICAO:L, AC:A320, Type:NB, TAT:2h".
func (r TurnaroundRule) String() string {
	region := "X"
	if r.ICAO != "" {
		region = strings.ToUpper(r.ICAO[:1])
	}

	body := "WB"
	if r.Narrowbody {
		body = "NB"
	}

	return fmt.Sprintf("ICAO:%s, AC:%s, Type:%s, TAT:%s", region, r.Aircraft, body,
		utils.ConvertMinutesToDuration(int64(r.Minutes)))
}

// ClassifyTurnaround classifies an airport/aircraft pair. Unknown or empty
// inputs fall in the normal region and widebody classes.
func ClassifyTurnaround(icao, aircraft string) TurnaroundRule {
	rule := TurnaroundRule{
		ICAO:     icao,
		Aircraft: aircraft,
	}

	if icao != "" {
		rule.SpecialRegion = specialRegions[strings.ToUpper(icao[:1])]
	}
	rule.Narrowbody = narrowbodyAircraft[strings.ToUpper(aircraft)]

	switch {
	case rule.SpecialRegion && rule.Narrowbody:
		rule.Minutes = TATSpecialNarrowbody
	case rule.SpecialRegion:
		rule.Minutes = TATSpecialWidebody
	case rule.Narrowbody:
		rule.Minutes = TATNormalNarrowbody
	default:
		rule.Minutes = TATNormalWidebody
	}

	return rule
}

// CalculateTAT returns the turnaround minutes for an airport/aircraft pair.
func CalculateTAT(icao, aircraft string) int {
	return ClassifyTurnaround(icao, aircraft).Minutes
}
