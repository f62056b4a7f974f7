package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

const (
	StatSourceDashboardAPI = "dashboard_api"
	StatSourceNBAStats     = "nba_stats"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// CronParser accepts six-field specs with a leading seconds field.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Config stores runtime configuration for the API and the projector.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level
	SwaggerEnabled     bool

	Season           string
	SlateTimezone    *time.Location
	SlateWorkers     int
	SlateCron        string
	EvaluatorWorkers int

	StatSource             string
	DashboardAPIBaseURL    string
	DashboardAPITimeout    time.Duration
	DashboardAPIWarmupWait time.Duration
	NBAStatsBaseURL        string
	NBAStatsTimeout        time.Duration
	PlayerRequestDelay     time.Duration
	ESPNSiteBaseURL        string
	ESPNCoreBaseURL        string
	ESPNTimeout            time.Duration

	RetryMaxAttempts           int
	RetryBackoff               time.Duration
	ProviderCircuitEnabled     bool
	ProviderCircuitFailures    int
	ProviderCircuitOpenTimeout time.Duration
	ProviderCircuitHalfOpenMax int

	CacheBackend string
	CacheTTL     time.Duration
	RedisURL     string

	StoreBackend            string
	OutputDir               string
	PerformanceLogPath      string
	DBURL                   string
	DBDisablePreparedBinary bool

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "nba-projection"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Season:                 strings.TrimSpace(getEnv("NBA_SEASON", "2025-26")),
		SlateCron:              strings.TrimSpace(getEnv("SLATE_CRON", "0 30 11 * * *")),
		DashboardAPIBaseURL:    strings.TrimSpace(getEnv("DASHBOARD_API_BASE_URL", "https://nba-e6du.onrender.com")),
		NBAStatsBaseURL:        strings.TrimSpace(getEnv("NBA_STATS_BASE_URL", "https://stats.nba.com/stats")),
		ESPNSiteBaseURL:        strings.TrimSpace(getEnv("ESPN_SITE_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports/basketball/nba")),
		ESPNCoreBaseURL:        strings.TrimSpace(getEnv("ESPN_CORE_BASE_URL", "https://sports.core.api.espn.com/v2/sports/basketball/leagues/nba")),
		RedisURL:               strings.TrimSpace(getEnv("REDIS_URL", "")),
		OutputDir:              strings.TrimSpace(getEnv("OUTPUT_DIR", "model_output")),
		PerformanceLogPath:     strings.TrimSpace(getEnv("PERFORMANCE_LOG_PATH", "model_performance/model_performance_log.csv")),
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
	}
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if !validSeason(cfg.Season) {
		return Config{}, fmt.Errorf("invalid NBA_SEASON %q: expected YYYY-YY", cfg.Season)
	}

	if cfg.LogLevel, err = logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	swaggerDefault := strconv.FormatBool(cfg.AppEnv != EnvProd)
	if cfg.SwaggerEnabled, err = strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault)); err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	if cfg.ReadTimeout, err = parsePositiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = parsePositiveDuration("APP_WRITE_TIMEOUT", "60s"); err != nil {
		return Config{}, err
	}

	tz := getEnv("SLATE_TIMEZONE", "America/New_York")
	if cfg.SlateTimezone, err = time.LoadLocation(tz); err != nil {
		return Config{}, fmt.Errorf("parse SLATE_TIMEZONE: %w", err)
	}
	if _, err := CronParser.Parse(cfg.SlateCron); err != nil {
		return Config{}, fmt.Errorf("parse SLATE_CRON: %w", err)
	}
	if cfg.SlateWorkers, err = parseMinInt("SLATE_WORKERS", 1, 1); err != nil {
		return Config{}, err
	}
	if cfg.EvaluatorWorkers, err = parseMinInt("EVALUATOR_WORKERS", 4, 1); err != nil {
		return Config{}, err
	}

	cfg.StatSource = strings.ToLower(strings.TrimSpace(getEnv("STAT_SOURCE", StatSourceDashboardAPI)))
	switch cfg.StatSource {
	case StatSourceDashboardAPI, StatSourceNBAStats:
	default:
		return Config{}, fmt.Errorf("invalid STAT_SOURCE %q: valid values are %s, %s", cfg.StatSource, StatSourceDashboardAPI, StatSourceNBAStats)
	}
	if cfg.DashboardAPITimeout, err = parsePositiveDuration("DASHBOARD_API_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}
	if cfg.DashboardAPIWarmupWait, err = time.ParseDuration(getEnv("DASHBOARD_API_WARMUP_WAIT", "10s")); err != nil {
		return Config{}, fmt.Errorf("parse DASHBOARD_API_WARMUP_WAIT: %w", err)
	}
	if cfg.DashboardAPIWarmupWait < 0 {
		return Config{}, fmt.Errorf("DASHBOARD_API_WARMUP_WAIT must be >= 0")
	}
	if cfg.NBAStatsTimeout, err = parsePositiveDuration("NBA_STATS_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}
	if cfg.PlayerRequestDelay, err = time.ParseDuration(getEnv("PLAYER_REQUEST_DELAY", "600ms")); err != nil {
		return Config{}, fmt.Errorf("parse PLAYER_REQUEST_DELAY: %w", err)
	}
	if cfg.PlayerRequestDelay < 0 {
		return Config{}, fmt.Errorf("PLAYER_REQUEST_DELAY must be >= 0")
	}
	if cfg.ESPNTimeout, err = parsePositiveDuration("ESPN_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}

	if cfg.RetryMaxAttempts, err = parseMinInt("RETRY_MAX_ATTEMPTS", 3, 1); err != nil {
		return Config{}, err
	}
	if cfg.RetryBackoff, err = time.ParseDuration(getEnv("RETRY_BACKOFF", "5s")); err != nil {
		return Config{}, fmt.Errorf("parse RETRY_BACKOFF: %w", err)
	}
	if cfg.RetryBackoff < 0 {
		return Config{}, fmt.Errorf("RETRY_BACKOFF must be >= 0")
	}
	if cfg.ProviderCircuitEnabled, err = strconv.ParseBool(getEnv("PROVIDER_CIRCUIT_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse PROVIDER_CIRCUIT_ENABLED: %w", err)
	}
	if cfg.ProviderCircuitFailures, err = parseMinInt("PROVIDER_CIRCUIT_FAILURE_COUNT", 5, 1); err != nil {
		return Config{}, err
	}
	if cfg.ProviderCircuitOpenTimeout, err = parsePositiveDuration("PROVIDER_CIRCUIT_OPEN_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}
	if cfg.ProviderCircuitHalfOpenMax, err = parseMinInt("PROVIDER_CIRCUIT_HALF_OPEN_MAX_REQ", 2, 1); err != nil {
		return Config{}, err
	}

	cfg.CacheBackend = strings.ToLower(strings.TrimSpace(getEnv("CACHE_BACKEND", CacheBackendMemory)))
	switch cfg.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
		}
	default:
		return Config{}, fmt.Errorf("invalid CACHE_BACKEND %q: valid values are %s, %s", cfg.CacheBackend, CacheBackendMemory, CacheBackendRedis)
	}
	if cfg.CacheTTL, err = parsePositiveDuration("CACHE_TTL", "1h"); err != nil {
		return Config{}, err
	}

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", StoreBackendFile)))
	switch cfg.StoreBackend {
	case StoreBackendFile:
		if cfg.OutputDir == "" || cfg.PerformanceLogPath == "" {
			return Config{}, fmt.Errorf("OUTPUT_DIR and PERFORMANCE_LOG_PATH are required when STORE_BACKEND=file")
		}
	case StoreBackendPostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when STORE_BACKEND=postgres")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q: valid values are %s, %s", cfg.StoreBackend, StoreBackendFile, StoreBackendPostgres)
	}
	if cfg.DBDisablePreparedBinary, err = strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true")); err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeUploadRate, err = parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	return cfg, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return d, nil
}

func parseMinInt(key string, fallback, min int) (int, error) {
	v, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if v < min {
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	return v, nil
}

// validSeason accepts the stats.nba.com season id, e.g. 2025-26.
func validSeason(v string) bool {
	if len(v) != 7 || v[4] != '-' {
		return false
	}
	start, err := strconv.Atoi(v[:4])
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(v[5:])
	if err != nil {
		return false
	}
	return (start+1)%100 == end
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
