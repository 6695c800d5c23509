package handlers

import (
	"net/http"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/locale"
	"content_intelligence/internal/service"

	log "github.com/sirupsen/logrus"
)

type AnalysisHandler struct {
	service ContentService
	locales *locale.Resolver
	log     *log.Logger
}

func NewAnalysisHandler(service ContentService, locales *locale.Resolver, log *log.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		locales: locales,
		log:     log,
	}
}

func (h *AnalysisHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`analyze document handler called`)

	var request service.AnalyzeRequest
	if err := decodeBody(w, r, &request); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}
	if request.Locale == "" {
		request.Locale = requestLocale(r, h.locales)
	}

	result, err := h.service.Analyze(r.Context(), request)
	if err != nil {
		sendError(w, h.log, `failed to analyze document`, err, statusFor(err))
		return
	}
	sendJSON(w, h.log, result)
}

// DocumentSavedHandler receives the after-change hook of the CMS.
type DocumentSavedHandler struct {
	service ContentService
	locales *locale.Resolver
	log     *log.Logger
}

func NewDocumentSavedHandler(service ContentService, locales *locale.Resolver, log *log.Logger) *DocumentSavedHandler {
	return &DocumentSavedHandler{
		service: service,
		locales: locales,
		log:     log,
	}
}

func (h *DocumentSavedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var doc models.RawDocument
	if err := decodeBody(w, r, &doc); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}
	if doc.ID == "" || doc.Collection == "" {
		err := errors.Invalid(`id and collection are required`)
		sendError(w, h.log, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.DocumentSaved(r.Context(), doc, requestLocale(r, h.locales))
	if err != nil {
		sendError(w, h.log, `failed to process saved document`, err, statusFor(err))
		return
	}
	h.log.WithFields(log.Fields{`id`: doc.ID, `collection`: doc.Collection, `score`: result.Score}).Info(`document analyzed`)
	sendJSON(w, h.log, result)
}
