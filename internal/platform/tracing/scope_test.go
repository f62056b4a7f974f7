package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordingScope(allow func(string) bool) (Scope, *tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return NewScope("test", allow).WithProvider(tp), recorder, tp
}

func TestScope_SkipsRootSpans(t *testing.T) {
	t.Parallel()

	scope, recorder, _ := recordingScope(nil)
	_, span := scope.Start(context.Background(), "usecase.SlateService.Run")
	span.End()

	require.Empty(t, recorder.Ended())
}

func TestScope_StartsChildUnderParent(t *testing.T) {
	t.Parallel()

	scope, recorder, tp := recordingScope(nil)
	ctx, parent := tp.Tracer("test").Start(context.Background(), "GET /v1/projections/{date}")

	_, child := scope.Start(ctx, "usecase.PredictionService.GetArchive", attribute.String("date", "2024-01-15"))
	child.End()
	parent.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	require.Equal(t, "usecase.PredictionService.GetArchive", ended[0].Name())
	require.Equal(t, parent.SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestScope_AllowFilter(t *testing.T) {
	t.Parallel()

	scope, recorder, tp := recordingScope(HasPrefix("httpapi.Handler."))
	ctx, parent := tp.Tracer("test").Start(context.Background(), "root")

	_, helper := scope.Start(ctx, "httpapi.writeJSON")
	helper.End()
	_, handler := scope.Start(ctx, "httpapi.Handler.ProjectMatchup")
	handler.End()
	parent.End()

	names := make([]string, 0, 2)
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	require.Equal(t, []string{"httpapi.Handler.ProjectMatchup", "root"}, names)
}

func TestFail_SetsErrorStatus(t *testing.T) {
	t.Parallel()

	scope, recorder, tp := recordingScope(nil)
	ctx, parent := tp.Tracer("test").Start(context.Background(), "root")
	_, span := scope.Start(ctx, "work")
	Fail(span, errors.New("upstream down"))
	Fail(span, nil)
	span.End()
	parent.End()

	require.Equal(t, codes.Error, recorder.Ended()[0].Status().Code)
}
