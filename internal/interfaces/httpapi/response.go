package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-projection/internal/platform/tracing"
	"github.com/riskibarqy/nba-projection/internal/usecase"
	"go.opentelemetry.io/otel/trace"
)

const (
	envelopeAPIVersion = "2.0"
	errorDomain        = "nba-projection"
	internalMessage    = "internal server error"
)

// envelope follows the Google JSON style guide: exactly one of data or error.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// errorMappings is checked in order; the first sentinel matched by errors.Is wins.
var errorMappings = []struct {
	target error
	mappedError
}{
	{usecase.ErrInvalidInput, mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{usecase.ErrArchiveExists, mappedError{http.StatusConflict, "archiveExists", "ALREADY_EXISTS"}},
	{usecase.ErrDependencyUnavailable, mappedError{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
	{usecase.ErrDataShape, mappedError{http.StatusServiceUnavailable, "upstreamDataShape", "UNAVAILABLE"}},
}

var internalError = mappedError{http.StatusInternalServerError, "internalError", "INTERNAL"}

func mapError(err error) mappedError {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.mappedError
		}
	}
	return internalError
}

func writeEnvelope(w http.ResponseWriter, status int, body envelope) {
	body.APIVersion = envelopeAPIVersion
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(body)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, envelope{Data: data})
}

// writeError maps err onto the envelope. Unmapped errors are reported as a
// generic internal error; their text only reaches the span.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	message := err.Error()
	if mapped == internalError {
		message = internalMessage
	}
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		tracing.Fail(trace.SpanFromContext(ctx), err)
	}

	writeEnvelope(w, mapped.HTTPStatus, envelope{Error: &errorBody{
		Code:    mapped.HTTPStatus,
		Message: message,
		Status:  mapped.Status,
		Errors:  []errorItem{{Domain: errorDomain, Reason: mapped.Reason, Message: message}},
	}})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New(internalMessage))
}
