package logging

import (
	"context"
	"hash/fnv"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventLoggingConfig holds sampling and filtering configuration.
type EventLoggingConfig struct {
	SuccessSampleRate float64 `env:"LOG_SUCCESS_SAMPLE_RATE" envDefault:"0.1"`
	ExcludePaths      string  `env:"LOG_EXCLUDE_PATHS" envDefault:"/health,/metrics,/ping"`
	ErrorOnlyPaths    string  `env:"LOG_ERROR_ONLY_PATHS" envDefault:"/healthz"`
	RedactPatterns    string  `env:"LOG_REDACT_PATTERNS" envDefault:"password,token,secret,key,authorization,credential,bearer,api_key,apikey,private"`
}

// ParsedEventLoggingConfig is the parsed version of EventLoggingConfig for efficient use.
type ParsedEventLoggingConfig struct {
	SuccessSampleRate float64
	ExcludePaths      map[string]bool
	ErrorOnlyPaths    map[string]bool
	RedactRegex       *regexp.Regexp
}

// ParseEventLoggingConfig parses the config into an efficient structure.
func ParseEventLoggingConfig(cfg *EventLoggingConfig) *ParsedEventLoggingConfig {
	parsed := &ParsedEventLoggingConfig{
		SuccessSampleRate: cfg.SuccessSampleRate,
		ExcludePaths:      make(map[string]bool),
		ErrorOnlyPaths:    make(map[string]bool),
	}

	for _, p := range strings.Split(cfg.ExcludePaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parsed.ExcludePaths[p] = true
		}
	}

	for _, p := range strings.Split(cfg.ErrorOnlyPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parsed.ErrorOnlyPaths[p] = true
		}
	}

	var regexParts []string
	for _, p := range strings.Split(cfg.RedactPatterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			regexParts = append(regexParts, regexp.QuoteMeta(p))
		}
	}
	if len(regexParts) > 0 {
		parsed.RedactRegex = regexp.MustCompile("(?i)(" + strings.Join(regexParts, "|") + ")")
	}

	return parsed
}

// DefaultEventLoggingConfig mirrors the envDefault tags of EventLoggingConfig.
func DefaultEventLoggingConfig() *EventLoggingConfig {
	return &EventLoggingConfig{
		SuccessSampleRate: 0.1,
		ExcludePaths:      "/health,/metrics,/ping",
		ErrorOnlyPaths:    "/healthz",
		RedactPatterns:    "password,token,secret,key,authorization,credential,bearer,api_key,apikey,private",
	}
}

// Base event loggers for each layer (reused across all requests, thread-safe)
var (
	APIEventLog    = newBaseEventLogger("api")
	ServiceLog     = newBaseEventLogger("service")
	SystemLog      = newBaseEventLogger("system")
	VectorStoreLog = newBaseEventLogger("vectorstore")
)

func newBaseEventLogger(layer string) *zap.Logger {
	return NewLogger(layer)
}

// Global sampling and redaction config, replaced by Configure at startup.
var (
	globalMu     sync.RWMutex
	globalConfig *ParsedEventLoggingConfig
)

func init() {
	Configure(DefaultEventLoggingConfig())
}

// Configure installs the sampling and redaction settings used by Log and the HTTP middleware.
func Configure(cfg *EventLoggingConfig) {
	if cfg == nil {
		cfg = DefaultEventLoggingConfig()
	}
	parsed := ParseEventLoggingConfig(cfg)

	globalMu.Lock()
	globalConfig = parsed
	globalMu.Unlock()
}

func currentConfig() *ParsedEventLoggingConfig {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

const redactedValue = "***"

// RedactFields redacts sensitive fields based on configured patterns.
func RedactFields(fields ...zap.Field) []zap.Field {
	redactRegex := currentConfig().RedactRegex
	if redactRegex == nil {
		return fields
	}
	redacted := make([]zap.Field, len(fields))
	for i, f := range fields {
		if redactRegex.MatchString(f.Key) {
			redacted[i] = zap.String(f.Key, redactedValue)
		} else {
			redacted[i] = f
		}
	}
	return redacted
}

// shouldLogForLevel determines if we should log based on sampling decision and log level.
// Errors and warnings are always logged regardless of sampling.
func shouldLogForLevel(ctx context.Context, level zapcore.Level) bool {
	// Always log errors and warnings
	if level >= zapcore.WarnLevel {
		return true
	}
	// For info/debug, check sampling decision
	return ShouldLog(ctx)
}

// ShouldLog reports whether a sampled (info/debug) event for the request in ctx should be emitted.
// Requests without a request_id are always logged.
func ShouldLog(ctx context.Context) bool {
	requestID := GetRequestID(ctx)
	if requestID == "" {
		return true
	}
	return HashRequestIDToFloat(requestID) < currentConfig().SuccessSampleRate
}

// Log logs an event using the logger from context with tail-based sampling.
// Errors and warnings are always logged; Info/Debug are sampled based on request_id.
// Usage:
//
//	logging.Log(ctx, logging.APIEventLog, zapcore.InfoLevel, "message", fields...)
//	logging.Log(ctx, logging.ServiceLog, zapcore.ErrorLevel, "embedding failed", zap.Error(err))
//	logging.Log(ctx, logging.VectorStoreLog, zapcore.InfoLevel, "query completed", zap.Duration("duration", duration))
func Log(ctx context.Context, base *zap.Logger, level zapcore.Level, message string, fields ...zap.Field) {
	if !shouldLogForLevel(ctx, level) {
		return
	}

	logger := WithRequestID(ctx, base)
	allFields := RedactFields(fields...)

	// Use zap's Log method directly - no need for switch statement
	logger.Log(level, message, allFields...)
}

// HashRequestIDToFloat returns a deterministic float between 0 and 1 based on request ID.
// This is used for tail-based sampling - same request_id always gets same hash value.
func HashRequestIDToFloat(requestID string) float64 {
	h := fnv.New64a()
	h.Write([]byte(requestID))
	return float64(h.Sum64()) / float64(^uint64(0))
}

func EventLevelFromStatusCode(statusCode int) zapcore.Level {
	switch {
	case statusCode >= 500:
		return zapcore.ErrorLevel
	case statusCode >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
