package usecase

import (
	"context"

	"github.com/riskibarqy/nba-projection/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

var usecaseSpans = tracing.NewScope("nba-projection/internal/usecase", nil)

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return usecaseSpans.Start(ctx, name)
}
