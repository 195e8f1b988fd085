package flight

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// DefaultOverrideCarrier marks airlines whose departure time is supplied by
// the operator instead of the turnaround rule.
const DefaultOverrideCarrier = "EMIRATES"

// OverrideRequester asks for an operator supplied departure time. The second
// return value is false when the operator cancels.
type OverrideRequester interface {
	RequestOverrideTime(ctx context.Context, flightRef, defaultTime string) (string, bool)
}

// OverrideRequesterFunc adapts a function to OverrideRequester.
type OverrideRequesterFunc func(ctx context.Context, flightRef, defaultTime string) (string, bool)

func (f OverrideRequesterFunc) RequestOverrideTime(ctx context.Context, flightRef, defaultTime string) (string, bool) {
	return f(ctx, flightRef, defaultTime)
}

// DepartureGenerator derives departure records from arrivals.
type DepartureGenerator struct {
	// OverrideCarriers are upper-case markers matched as substrings of the
	// upper-cased airline name.
	OverrideCarriers []string
}

func NewDepartureGenerator(overrideCarriers []string) *DepartureGenerator {
	markers := make([]string, 0, len(overrideCarriers))
	upper := cases.Upper(language.Und)
	for _, c := range overrideCarriers {
		if c = strings.TrimSpace(c); c != "" {
			markers = append(markers, upper.String(c))
		}
	}

	return &DepartureGenerator{
		OverrideCarriers: markers,
	}
}

// RequiresOverride reports whether the airline takes an operator supplied
// departure time.
func (g *DepartureGenerator) RequiresOverride(companhia string) bool {
	// a Caser keeps state, so one per call
	name := cases.Upper(language.Und).String(companhia)
	for _, marker := range g.OverrideCarriers {
		if strings.Contains(name, marker) {
			return true
		}
	}

	return false
}

// Generate derives the departure for arrival. It returns false when no
// departure should be recorded, which happens only when an override carrier
// gets no valid operator time.
func (g *DepartureGenerator) Generate(ctx context.Context,
	arrival dto.FlightRecord,
	requester OverrideRequester,
	runLog *RunLog,
) (dto.FlightRecord, bool) {
	departure := arrival

	flightNo, ok := parseFlightNumber(arrival.Voo)
	switch {
	case !ok:
		departure.Voo = arrival.Voo
	case g.RequiresOverride(arrival.Companhia):
		inputTime, answered := "", false
		if requester != nil {
			inputTime, answered = requester.RequestOverrideTime(ctx, arrival.Voo, arrival.Horario)
		}

		if !answered || !IsClockTime(inputTime) {
			runLog.Addf("Invalid departure time for %s flight %s; departure not generated",
				arrival.Companhia, arrival.Voo)
			slog.WarnContext(ctx, "override time missing or invalid, departure not generated",
				slog.String("companhia", arrival.Companhia),
				slog.String("voo", arrival.Voo),
				slog.String("input", inputTime))
			return dto.FlightRecord{}, false
		}

		departure.Voo = strconv.Itoa(flightNo - 1)
		departure.Horario = inputTime
	default:
		departure.Voo = strconv.Itoa(flightNo + 1)

		rule := ClassifyTurnaround(arrival.ICAO, arrival.Aeronave)
		if horario, ok := AddMinutes(arrival.Horario, rule.Minutes); ok {
			departure.Horario = horario
		}

		slog.DebugContext(ctx, "departure derived",
			slog.String("voo", departure.Voo),
			slog.String("horario", departure.Horario),
			slog.String("tat_rule", rule.String()))
	}

	departure.Status = dto.DefaultStatus

	return departure, true
}
