package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WithCarriesFieldsToMirror(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core)).With("team", "BOS")

	var mu sync.Mutex
	var mirrored []any
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		if level != LevelWarn || msg != "player skipped" {
			t.Errorf("unexpected mirrored record level=%s msg=%s", level, msg)
		}
		mirrored = append(mirrored, args...)
	})
	defer SetMirror(nil)

	logger.WarnContext(context.Background(), "player skipped", "player", "Jayson Tatum", "error", errors.New("timeout"))
	logger.Debug("filtered out")

	if logs.Len() != 1 {
		t.Fatalf("expected one record, got=%d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["team"] != "BOS" {
		t.Fatalf("expected team field, got=%v", entry.ContextMap())
	}
	if entry.ContextMap()["player"] != "Jayson Tatum" {
		t.Fatalf("expected player field, got=%v", entry.ContextMap())
	}

	mu.Lock()
	defer mu.Unlock()
	if len(mirrored) != 6 || mirrored[0] != "team" || mirrored[1] != "BOS" {
		t.Fatalf("expected inherited fields first in mirror args, got=%v", mirrored)
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil child logger")
	}
}

func TestZapFields_OddArgs(t *testing.T) {
	t.Parallel()

	fields := zapFields([]any{"a", 1, 2, "b"})
	if len(fields) != 2 {
		t.Fatalf("expected two fields, got=%d", len(fields))
	}
	if fields[1].Key != "arg" {
		t.Fatalf("expected non-string key to be renamed arg, got=%s", fields[1].Key)
	}
}

func TestNewJSON_WritesLevelFilteredLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSON(&buf, LevelInfo)
	logger.Info("slate archived", "games", 3)
	logger.Debug("cache hit")

	out := buf.String()
	if !strings.Contains(out, `"msg":"slate archived"`) || !strings.Contains(out, `"games":3`) {
		t.Fatalf("expected info record in output, got=%s", out)
	}
	if strings.Contains(out, "cache hit") {
		t.Fatalf("expected debug record to be filtered, got=%s", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"":        LevelInfo,
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warn":    LevelWarn,
		"Warning": LevelWarn,
		"error":   LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Fatalf("expected %q to parse, got=%v", raw, err)
		}
		if got != want {
			t.Fatalf("expected %q to parse as %s, got=%s", raw, want, got)
		}
	}

	for _, raw := range []string{"verbose", "fatal", "dpanic"} {
		if _, err := ParseLevel(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}
