package http

import (
	"context"

	"content_intelligence/internal/http/handlers"
	"content_intelligence/internal/http/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func initRoutes(_ context.Context, r *Router) {
	r.httpRouter.Use(middleware.MetricsMiddleware)
	r.httpRouter.Use(middleware.RequestIDLoggerMiddleware(r.log))
	if r.cfg != nil && r.cfg.Timeouts.Request > 0 {
		r.httpRouter.Use(chimw.Timeout(r.cfg.Timeouts.Request))
	}

	corpusHandler := handlers.NewCorpusHandler(r.service, r.locales, r.log)
	settingsHandler := handlers.NewSettingsHandler(r.service, r.locales, r.log)

	// Routes
	r.httpRouter.Get("/ready", handlers.NewReadyHandler().Handle)
	r.httpRouter.Post("/analyze", handlers.NewAnalysisHandler(r.service, r.locales, r.log).Handle)
	r.httpRouter.Post("/hooks/document-saved", handlers.NewDocumentSavedHandler(r.service, r.locales, r.log).Handle)
	r.httpRouter.Get("/link-graph", corpusHandler.LinkGraph)
	r.httpRouter.Get("/sitemap-audit", corpusHandler.SitemapAudit)
	r.httpRouter.Get("/keywords/research", corpusHandler.KeywordResearch)
	r.httpRouter.Get("/keywords/cannibalization", corpusHandler.Cannibalization)
	r.httpRouter.Post("/links/check", handlers.NewLinkCheckHandler(r.service, r.log).Handle)
	r.httpRouter.Get("/scores/{docKey}/history", handlers.NewScoreHistoryHandler(r.service, r.log).Handle)
	r.httpRouter.Get("/settings", settingsHandler.Get)
	r.httpRouter.Put("/settings", settingsHandler.Put)
}
