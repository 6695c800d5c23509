package handlers

import (
	"net/http"

	"content_intelligence/internal/pkg/locale"

	log "github.com/sirupsen/logrus"
)

// CorpusHandler serves the site-wide reports computed over the loaded corpus.
type CorpusHandler struct {
	service ContentService
	locales *locale.Resolver
	log     *log.Logger
}

func NewCorpusHandler(service ContentService, locales *locale.Resolver, log *log.Logger) *CorpusHandler {
	return &CorpusHandler{
		service: service,
		locales: locales,
		log:     log,
	}
}

func (h *CorpusHandler) LinkGraph(w http.ResponseWriter, r *http.Request) {
	graph, err := h.service.LinkGraph(r.Context(), collections(r))
	if err != nil {
		sendError(w, h.log, `failed to build link graph`, err, statusFor(err))
		return
	}
	sendJSON(w, h.log, graph)
}

func (h *CorpusHandler) SitemapAudit(w http.ResponseWriter, r *http.Request) {
	audit, err := h.service.SitemapAudit(r.Context(), collections(r))
	if err != nil {
		sendError(w, h.log, `failed to audit sitemap`, err, statusFor(err))
		return
	}
	sendJSON(w, h.log, audit)
}

func (h *CorpusHandler) KeywordResearch(w http.ResponseWriter, r *http.Request) {
	maxPerType, err := intParam(r, `max`)
	if err != nil {
		sendError(w, h.log, `failed to validate query`, err, http.StatusBadRequest)
		return
	}
	research, err := h.service.KeywordResearch(r.Context(), collections(r), requestLocale(r, h.locales), maxPerType)
	if err != nil {
		sendError(w, h.log, `failed to research keywords`, err, statusFor(err))
		return
	}
	sendJSON(w, h.log, research)
}

func (h *CorpusHandler) Cannibalization(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Cannibalization(r.Context(), collections(r), requestLocale(r, h.locales))
	if err != nil {
		sendError(w, h.log, `failed to detect keyword cannibalization`, err, statusFor(err))
		return
	}
	sendJSON(w, h.log, result)
}
