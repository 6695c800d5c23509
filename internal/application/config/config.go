package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"content_intelligence/internal/domain/adaptors"
	"content_intelligence/internal/domain/models"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	LogLevel    string
	DebugMode   bool
	MetricsHost string

	// Locale, when set, overrides every request locale.
	Locale        string
	DefaultLocale string
	// LocaleMapping maps request locales onto supported ones, e.g. "fr-ca=en".
	LocaleMapping map[string]string

	SiteName      string
	SiteHost      string
	DisabledRules []models.RuleGroup
	KnownRoutes   []string
	Collections   []string

	DatabaseURL string
	CorpusDir   string
	CacheTTL    time.Duration

	LinkCheckTimeout   time.Duration
	LinkCheckBatchSize int
	LinkCheckRate      float64
}

func NewAppConfig() (*AppConfig, error) {
	err := godotenv.Load(`config.env`)
	if err != nil {
		return nil, err
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (*AppConfig, error) {
	var errMsg []string

	cfg := AppConfig{}
	cfg.LogLevel = strings.ToLower(os.Getenv("APP_LOG_LEVEL"))
	cfg.DebugMode = os.Getenv("APP_ENABLE_DEBUG") == "true"
	cfg.MetricsHost = os.Getenv("HTTP_APP_METRICS_HOST")

	cfg.Locale = strings.ToLower(os.Getenv("SEO_LOCALE"))
	cfg.DefaultLocale = strings.ToLower(getEnv("SEO_DEFAULT_LOCALE", "en"))
	cfg.LocaleMapping = parseMapping(os.Getenv("SEO_LOCALE_MAPPING"))
	cfg.SiteName = os.Getenv("SEO_SITE_NAME")
	cfg.SiteHost = os.Getenv("SEO_SITE_HOST")
	for _, g := range parseList(os.Getenv("SEO_DISABLED_RULES")) {
		cfg.DisabledRules = append(cfg.DisabledRules, models.RuleGroup(g))
	}
	cfg.KnownRoutes = parseList(os.Getenv("SEO_KNOWN_ROUTES"))
	cfg.Collections = parseList(getEnv("SEO_COLLECTIONS", "pages,posts"))

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.CorpusDir = os.Getenv("CORPUS_DIR")

	var err error
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CORPUS_CACHE_TTL", "5m")); err != nil {
		errMsg = append(errMsg, fmt.Sprintf(`CORPUS_CACHE_TTL: %v`, err))
	}
	if cfg.LinkCheckTimeout, err = time.ParseDuration(getEnv("LINK_CHECK_TIMEOUT", "10s")); err != nil {
		errMsg = append(errMsg, fmt.Sprintf(`LINK_CHECK_TIMEOUT: %v`, err))
	}
	if cfg.LinkCheckBatchSize, err = strconv.Atoi(getEnv("LINK_CHECK_BATCH_SIZE", "10")); err != nil {
		errMsg = append(errMsg, fmt.Sprintf(`LINK_CHECK_BATCH_SIZE: %v`, err))
	}
	if cfg.LinkCheckRate, err = strconv.ParseFloat(getEnv("LINK_CHECK_RATE", "20"), 64); err != nil {
		errMsg = append(errMsg, fmt.Sprintf(`LINK_CHECK_RATE: %v`, err))
	}

	errMsg = append(errMsg, validate(&cfg)...)
	if len(errMsg) != 0 {
		return nil, fmt.Errorf(`validation failed: %s`, strings.Join(errMsg, "\n"))
	}

	return &cfg, nil
}

func validate(cfg *AppConfig) []string {
	var errMsg []string
	switch level := adaptors.LogLevel(cfg.LogLevel); {
	case level == "":
		errMsg = append(errMsg, `log level is empty`)
	case !level.Valid():
		errMsg = append(errMsg, fmt.Sprintf(`log level %q is not one of trace, debug, info, warn, error`, cfg.LogLevel))
	}

	if cfg.MetricsHost == "" {
		errMsg = append(errMsg, `metrics host is empty`)
	}

	if len(cfg.Collections) == 0 {
		errMsg = append(errMsg, `no collections configured`)
	}

	if cfg.DatabaseURL == "" && cfg.CorpusDir == "" {
		errMsg = append(errMsg, `either DATABASE_URL or CORPUS_DIR is required`)
	}

	if cfg.LinkCheckBatchSize < 0 || cfg.LinkCheckRate < 0 {
		errMsg = append(errMsg, `link check batch size and rate must not be negative`)
	}
	return errMsg
}

// SeoConfig is the static analysis configuration before persisted settings
// are merged in.
func (c *AppConfig) SeoConfig() models.SeoConfig {
	return models.SeoConfig{
		Locale:        c.DefaultLocale,
		SiteName:      c.SiteName,
		SiteHost:      c.SiteHost,
		DisabledRules: c.DisabledRules,
		KnownRoutes:   c.KnownRoutes,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseMapping(raw string) map[string]string {
	out := map[string]string{}
	for _, pair := range parseList(raw) {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
