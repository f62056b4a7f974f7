package httpapi

import (
	"context"

	"github.com/riskibarqy/nba-projection/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Only handler spans are recorded.
var apiSpans = tracing.NewScope("nba-projection/internal/interfaces/httpapi", tracing.HasPrefix("httpapi.Handler."))

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiSpans.Start(ctx, name)
}
