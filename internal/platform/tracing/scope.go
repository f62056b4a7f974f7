package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var noopSpan = trace.SpanFromContext(context.Background())

// Scope starts spans for one package. A span is only opened under a valid
// parent, so probes filtered out at the edge and background helpers never
// start traces of their own.
type Scope struct {
	provider trace.TracerProvider
	name     string
	allow    func(spanName string) bool
}

func NewScope(instrumentation string, allow func(spanName string) bool) Scope {
	return Scope{name: instrumentation, allow: allow}
}

// WithProvider pins the scope to tp instead of the global provider.
func (s Scope) WithProvider(tp trace.TracerProvider) Scope {
	s.provider = tp
	return s
}

func (s Scope) Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(spanName) == "" {
		return ctx, noopSpan
	}
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}
	if s.allow != nil && !s.allow(spanName) {
		return ctx, noopSpan
	}

	provider := s.provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return provider.Tracer(s.name).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

func HasPrefix(prefix string) func(string) bool {
	return func(spanName string) bool {
		return strings.HasPrefix(spanName, prefix)
	}
}

// Fail marks span as errored. A nil err leaves the span untouched.
func Fail(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
