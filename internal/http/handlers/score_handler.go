package handlers

import (
	"net/http"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/locale"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type ScoreHistoryHandler struct {
	service ContentService
	log     *log.Logger
}

func NewScoreHistoryHandler(service ContentService, log *log.Logger) *ScoreHistoryHandler {
	return &ScoreHistoryHandler{service: service, log: log}
}

func (h *ScoreHistoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, `limit`)
	if err != nil {
		sendError(w, h.log, `failed to validate query`, err, http.StatusBadRequest)
		return
	}
	history, err := h.service.ScoreHistory(r.Context(), chi.URLParam(r, `docKey`), limit)
	if err != nil {
		sendError(w, h.log, `failed to load score history`, err, statusFor(err))
		return
	}
	if history == nil {
		history = []models.ScoreSnapshot{}
	}
	sendJSON(w, h.log, history)
}

// SettingsHandler reads and replaces the persisted per-site settings.
type SettingsHandler struct {
	service ContentService
	locales *locale.Resolver
	log     *log.Logger
}

func NewSettingsHandler(service ContentService, locales *locale.Resolver, log *log.Logger) *SettingsHandler {
	return &SettingsHandler{service: service, locales: locales, log: log}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, h.log, h.service.Config(r.Context(), requestLocale(r, h.locales), nil))
}

func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var cfg models.SeoConfig
	if err := decodeBody(w, r, &cfg); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}
	saved, err := h.service.SaveSettings(r.Context(), cfg)
	if err != nil {
		sendError(w, h.log, `failed to save settings`, err, statusFor(err))
		return
	}
	sendJSON(w, h.log, saved)
}
