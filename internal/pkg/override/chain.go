package override

import (
	"context"

	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flight"
)

// Chain asks each requester in order until one answers.
type Chain []flight.OverrideRequester

func (c Chain) RequestOverrideTime(ctx context.Context, flightRef, defaultTime string) (string, bool) {
	for _, requester := range c {
		if requester == nil {
			continue
		}
		if hhmm, ok := requester.RequestOverrideTime(ctx, flightRef, defaultTime); ok {
			return hhmm, true
		}
	}

	return "", false
}
