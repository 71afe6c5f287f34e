package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/lazysim/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records query execution metrics.
//
// Query names are extracted via reflection with the package prefix removed,
// so "*estimation.EstimateMiningQuery" becomes "EstimateMiningQuery".
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Query, next mediator.HandlerFunc) (mediator.Result, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)

		collector.RecordCommandExecution(extractQueryName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}

func extractQueryName(request mediator.Query) string {
	if request == nil {
		return "UnknownQuery"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	parts := strings.Split(fullName, ".")
	return parts[len(parts)-1]
}
