package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/locale"
	"content_intelligence/internal/service"
	"content_intelligence/internal/service/keywords"
	"content_intelligence/internal/service/linkgraph"
)

const maxBodyBytes = 5 << 20

// ContentService is the part of service.ContentService the handlers call.
type ContentService interface {
	Config(ctx context.Context, requestLocale string, override *models.SeoConfig) models.SeoConfig
	SaveSettings(ctx context.Context, cfg models.SeoConfig) (models.SeoConfig, error)
	Analyze(ctx context.Context, req service.AnalyzeRequest) (service.AnalyzeResponse, error)
	DocumentSaved(ctx context.Context, doc models.RawDocument, requestLocale string) (models.AnalysisResult, error)
	LinkGraph(ctx context.Context, collections []string) (linkgraph.Graph, error)
	SitemapAudit(ctx context.Context, collections []string) (linkgraph.Audit, error)
	KeywordResearch(ctx context.Context, collections []string, requestLocale string, maxPerType int) (keywords.Research, error)
	Cannibalization(ctx context.Context, collections []string, requestLocale string) (keywords.Cannibalization, error)
	CheckLinks(ctx context.Context, urls []string) ([]models.LinkStatus, error)
	ScoreHistory(ctx context.Context, docKey string, limit int) ([]models.ScoreSnapshot, error)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, `failed to decode request body: `+err.Error())
	}
	return nil
}

// requestLocale picks the locale of a request: the locale query parameter,
// then the Accept-Language header. Empty means the configured default.
func requestLocale(r *http.Request, resolver *locale.Resolver) string {
	if l := strings.TrimSpace(r.URL.Query().Get(`locale`)); l != "" {
		return l
	}
	if header := r.Header.Get(`Accept-Language`); header != "" && resolver != nil {
		return resolver.FromAcceptLanguage(header)
	}
	return ""
}

// collections reads the comma separated collections query parameter.
func collections(r *http.Request) []string {
	var out []string
	for _, c := range strings.Split(r.URL.Query().Get(`collections`), ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.Invalid(name + ` must be a non-negative integer`)
	}
	return n, nil
}
