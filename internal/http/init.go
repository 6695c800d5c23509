package http

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"content_intelligence/internal/adaptors"
	"content_intelligence/internal/application/config"
	domain "content_intelligence/internal/domain/adaptors"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/lexicon"
	"content_intelligence/internal/pkg/locale"
	"content_intelligence/internal/service"
	"content_intelligence/internal/service/corpus"
	"content_intelligence/internal/service/linkcheck"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type Router struct {
	httpRouter *chi.Mux
	log        *log.Logger
	service    *service.ContentService
	locales    *locale.Resolver
	cfg        *HTTPServerConfig
}

func Init(ctx context.Context, log *log.Logger, appCfg *config.AppConfig) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := NewHTTPServerConfig()
	if err != nil {
		log.Fatalf(`Failed to load config: %v`, err)
	}

	svc, locales, db, err := NewContentService(ctx, log, appCfg)
	if err != nil {
		log.WithError(err).Fatal(`Failed to initialise content service`)
	}

	router := &Router{
		httpRouter: chi.NewRouter(),
		log:        log,
		service:    svc,
		locales:    locales,
		cfg:        cfg,
	}
	initRoutes(ctx, router)

	metricsServer := NewMetricsServer(appCfg.MetricsHost, cfg.Timeouts.ShutdownWait, log)
	httpServer := NewHttpServer(ctx, cfg, router.httpRouter, log)
	servers := []interface{ Start() error }{metricsServer, httpServer}

	var pprofServer *AuxServer
	if appCfg.DebugMode && cfg.PprofHost != "" {
		pprofServer = NewPprofServer(cfg.PprofHost, cfg.Timeouts.ShutdownWait, log)
		servers = append(servers, pprofServer)
	}
	for _, s := range servers {
		go func(s interface{ Start() error }) {
			if err := s.Start(); err != nil {
				log.WithError(err).Fatal(`server stopped`)
			}
		}(s)
	}

	<-sigs
	if err := httpServer.Stop(); err != nil {
		log.WithError(err).Error(`failed to stop http server`)
	}
	svc.Wait()

	if pprofServer != nil {
		if err := pprofServer.Stop(); err != nil {
			log.WithError(err).Error(`failed to stop pprof server`)
		}
	}
	if err := metricsServer.Stop(); err != nil {
		log.WithError(err).Error(`failed to stop metrics server`)
	}
	if db != nil {
		if err := db.Close(); err != nil {
			log.WithError(err).Error(`failed to close database`)
		}
	}
}

// NewContentService builds the service from the application config. With
// DATABASE_URL set, documents, settings and score history live in Postgres;
// otherwise documents are read from CORPUS_DIR and history is disabled. The
// returned *sql.DB is nil in the latter case.
func NewContentService(ctx context.Context, log *log.Logger, appCfg *config.AppConfig) (*service.ContentService, *locale.Resolver, *sql.DB, error) {
	lexicons := lexicon.Default()
	locales := locale.NewResolver(lexicons.Locales(), appCfg.DefaultLocale, appCfg.Locale, appCfg.LocaleMapping)

	client := adaptors.NewWebClient(appCfg.LinkCheckTimeout, log, adaptors.WithDialGuard(linkcheck.DialGuard))
	deps := service.Dependencies{
		Lexicons: lexicons,
		Locales:  locales,
		Static:   appCfg.SeoConfig(),
		Checker: linkcheck.NewChecker(log, client, nil, linkcheck.Options{
			Timeout:       appCfg.LinkCheckTimeout,
			BatchSize:     appCfg.LinkCheckBatchSize,
			RatePerSecond: appCfg.LinkCheckRate,
		}),
	}

	var source domain.DocumentSource
	var db *sql.DB
	if appCfg.DatabaseURL != "" {
		var err error
		db, err = adaptors.ConnectPostgres(ctx, appCfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		documents := adaptors.NewPostgresDocumentSource(db, log)
		settings := adaptors.NewPostgresSettingsStore(db)
		scores := adaptors.NewPostgresScoreStore(db)
		for _, s := range []interface{ EnsureSchema(context.Context) error }{documents, settings, scores} {
			if err := s.EnsureSchema(ctx); err != nil {
				_ = db.Close()
				return nil, nil, nil, errors.Wrap(err, `failed to prepare database schema`)
			}
		}
		source = documents
		deps.Writer = documents
		deps.Settings = settings
		deps.Scores = scores
		log.Info(`using postgres document source`)
	} else {
		source = adaptors.NewFileDocumentSource(appCfg.CorpusDir, log)
		log.WithField(`dir`, appCfg.CorpusDir).Info(`using file document source`)
	}
	deps.Corpus = corpus.NewLoader(log, source, appCfg.Collections, appCfg.CacheTTL)

	return service.NewContentService(log, deps), locales, db, nil
}
