package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time returns a deferred hook that logs the duration and outcome of the
// named operation:
//
//	defer obs.Time(ctx, "osrm.FetchAlternatives")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		ev := log.Debug().Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds())
		if errp != nil && *errp != nil {
			ev = log.Warn().Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Err(*errp)
		}
		ev.Msg("op done")
	}
}
