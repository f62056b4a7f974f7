package observability

import (
	"testing"
	"time"

	"github.com/riskibarqy/nba-projection/internal/config"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

func TestInitPyroscope_Disabled(t *testing.T) {
	t.Parallel()

	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, "projector", logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		AppEnv:                 config.EnvProd,
		ServiceName:            "nba-projection",
		Season:                 "2025-26",
		PyroscopeAppName:       "nba-projection",
		PyroscopeServerAddress: "http://pyroscope:4040",
		PyroscopeUploadRate:    15 * time.Second,
	}

	got := pyroscopeConfig(cfg, "api")
	if got.Tags["binary"] != "api" || got.Tags["season"] != "2025-26" || got.Tags["env"] != config.EnvProd {
		t.Fatalf("unexpected tags: %+v", got.Tags)
	}
	if len(got.ProfileTypes) != len(pipelineProfiles) {
		t.Fatalf("expected %d profile types, got=%d", len(pipelineProfiles), len(got.ProfileTypes))
	}
}
