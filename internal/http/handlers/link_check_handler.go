package handlers

import (
	"net/http"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

type LinkCheckHandler struct {
	service ContentService
	log     *log.Logger
}

type LinkCheckRequest struct {
	URLs []string `json:"urls"`
}

type LinkCheckResponse struct {
	Results []models.LinkStatus `json:"results"`
	Broken  int                 `json:"broken"`
}

func (r *LinkCheckRequest) Validate() error {
	if len(r.URLs) == 0 {
		return errors.Invalid(`urls is empty`)
	}
	return nil
}

func NewLinkCheckHandler(service ContentService, log *log.Logger) *LinkCheckHandler {
	return &LinkCheckHandler{
		service: service,
		log:     log,
	}
}

func (h *LinkCheckHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var request LinkCheckRequest
	if err := decodeBody(w, r, &request); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}
	if err := request.Validate(); err != nil {
		sendError(w, h.log, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	results, err := h.service.CheckLinks(r.Context(), request.URLs)
	if err != nil {
		sendError(w, h.log, `failed to check links`, err, statusFor(err))
		return
	}

	response := LinkCheckResponse{Results: results}
	for _, s := range results {
		if !s.OK {
			response.Broken++
		}
	}
	sendJSON(w, h.log, response)
}
