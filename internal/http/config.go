package http

import (
	"os"
	"strings"
	"time"

	"content_intelligence/internal/pkg/errors"
)

type HTTPServerConfig struct {
	Host      string
	PprofHost string
	Timeouts  struct {
		Read         time.Duration
		ReadHeader   time.Duration
		Write        time.Duration
		Idle         time.Duration
		ShutdownWait time.Duration
		// Request bounds the handling of one request, link checks included.
		Request time.Duration
	}
}

// NewHTTPServerConfig reads the server settings from the environment. The
// config.env file is loaded by the application config beforehand.
func NewHTTPServerConfig() (*HTTPServerConfig, error) {
	var errMsg []string
	cfg := &HTTPServerConfig{}

	cfg.Host = os.Getenv("HTTP_SERVER_HOST")
	if cfg.Host == "" {
		errMsg = append(errMsg, "HTTP_SERVER_HOST is required")
	}
	cfg.PprofHost = os.Getenv("HTTP_PPROF_HOST")

	parseDuration := func(envVar string, def time.Duration) time.Duration {
		value := os.Getenv(envVar)
		if value == "" {
			return def
		}
		duration, err := time.ParseDuration(value)
		if err != nil {
			errMsg = append(errMsg, envVar+": invalid duration format: "+err.Error())
			return def
		}
		return duration
	}

	cfg.Timeouts.Read = parseDuration("HTTP_APP_READ_TIMEOUT_DURATION", 15*time.Second)
	cfg.Timeouts.ReadHeader = parseDuration("HTTP_APP_READ_HEADER_TIMEOUT_DURATION", 5*time.Second)
	cfg.Timeouts.Write = parseDuration("HTTP_APP_WRITE_TIMEOUT_DURATION", 2*time.Minute)
	cfg.Timeouts.Idle = parseDuration("HTTP_APP_IDLE_TIMEOUT_DURATION", time.Minute)
	cfg.Timeouts.ShutdownWait = parseDuration("HTTP_APP_SHUTDOWN_TIMEOUT_DURATION", 10*time.Second)
	cfg.Timeouts.Request = parseDuration("HTTP_APP_REQUEST_TIMEOUT_DURATION", 90*time.Second)

	if len(errMsg) > 0 {
		return nil, errors.New("configuration validation failed:\n" + strings.Join(errMsg, "\n"))
	}
	return cfg, nil
}
