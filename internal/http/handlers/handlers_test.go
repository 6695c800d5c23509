package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/locale"
	"content_intelligence/internal/service"
	"content_intelligence/internal/service/keywords"
	"content_intelligence/internal/service/linkgraph"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Config(ctx context.Context, requestLocale string, override *models.SeoConfig) models.SeoConfig {
	return m.Called(ctx, requestLocale, override).Get(0).(models.SeoConfig)
}

func (m *MockContentService) SaveSettings(ctx context.Context, cfg models.SeoConfig) (models.SeoConfig, error) {
	args := m.Called(ctx, cfg)
	return args.Get(0).(models.SeoConfig), args.Error(1)
}

func (m *MockContentService) Analyze(ctx context.Context, req service.AnalyzeRequest) (service.AnalyzeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.AnalyzeResponse), args.Error(1)
}

func (m *MockContentService) DocumentSaved(ctx context.Context, doc models.RawDocument, requestLocale string) (models.AnalysisResult, error) {
	args := m.Called(ctx, doc, requestLocale)
	return args.Get(0).(models.AnalysisResult), args.Error(1)
}

func (m *MockContentService) LinkGraph(ctx context.Context, collections []string) (linkgraph.Graph, error) {
	args := m.Called(ctx, collections)
	return args.Get(0).(linkgraph.Graph), args.Error(1)
}

func (m *MockContentService) SitemapAudit(ctx context.Context, collections []string) (linkgraph.Audit, error) {
	args := m.Called(ctx, collections)
	return args.Get(0).(linkgraph.Audit), args.Error(1)
}

func (m *MockContentService) KeywordResearch(ctx context.Context, collections []string, requestLocale string, maxPerType int) (keywords.Research, error) {
	args := m.Called(ctx, collections, requestLocale, maxPerType)
	return args.Get(0).(keywords.Research), args.Error(1)
}

func (m *MockContentService) Cannibalization(ctx context.Context, collections []string, requestLocale string) (keywords.Cannibalization, error) {
	args := m.Called(ctx, collections, requestLocale)
	return args.Get(0).(keywords.Cannibalization), args.Error(1)
}

func (m *MockContentService) CheckLinks(ctx context.Context, urls []string) ([]models.LinkStatus, error) {
	args := m.Called(ctx, urls)
	var statuses []models.LinkStatus
	if s := args.Get(0); s != nil {
		statuses = s.([]models.LinkStatus)
	}
	return statuses, args.Error(1)
}

func (m *MockContentService) ScoreHistory(ctx context.Context, docKey string, limit int) ([]models.ScoreSnapshot, error) {
	args := m.Called(ctx, docKey, limit)
	var history []models.ScoreSnapshot
	if h := args.Get(0); h != nil {
		history = h.([]models.ScoreSnapshot)
	}
	return history, args.Error(1)
}

func newRouter(svc ContentService) *chi.Mux {
	logger := log.New()
	locales := locale.NewResolver([]string{"en", "fr"}, "en", "", nil)
	corpusHandler := NewCorpusHandler(svc, locales, logger)
	settings := NewSettingsHandler(svc, locales, logger)

	r := chi.NewRouter()
	r.Get("/ready", NewReadyHandler().Handle)
	r.Post("/analyze", NewAnalysisHandler(svc, locales, logger).Handle)
	r.Post("/hooks/document-saved", NewDocumentSavedHandler(svc, locales, logger).Handle)
	r.Get("/link-graph", corpusHandler.LinkGraph)
	r.Get("/sitemap-audit", corpusHandler.SitemapAudit)
	r.Get("/keywords/research", corpusHandler.KeywordResearch)
	r.Get("/keywords/cannibalization", corpusHandler.Cannibalization)
	r.Post("/links/check", NewLinkCheckHandler(svc, logger).Handle)
	r.Get("/scores/{docKey}/history", NewScoreHistoryHandler(svc, logger).Handle)
	r.Get("/settings", settings.Get)
	r.Put("/settings", settings.Put)
	return r
}

func serve(t *testing.T, svc ContentService, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestReadyHandler(t *testing.T) {
	rec := serve(t, new(MockContentService), http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAnalysisHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		headers    map[string]string
		setupMock  func(m *MockContentService)
		wantStatus int
		wantScore  int
	}{
		{
			name: "success with accept-language",
			body: `{"input":{"metaTitle":"Chaussures rouges"}}`,
			headers: map[string]string{
				"Accept-Language": "fr-CH, fr;q=0.9, en;q=0.8",
			},
			setupMock: func(m *MockContentService) {
				m.On("Analyze", mock.Anything, mock.MatchedBy(func(req service.AnalyzeRequest) bool {
					return req.Locale == "fr" && req.Input.MetaTitle == "Chaussures rouges"
				})).Return(service.AnalyzeResponse{
					AnalysisResult: models.AnalysisResult{Score: 72, Level: models.LevelGood},
					Locale:         "fr",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantScore:  72,
		},
		{
			name: "body locale wins",
			body: `{"input":{},"locale":"en"}`,
			headers: map[string]string{
				"Accept-Language": "fr",
			},
			setupMock: func(m *MockContentService) {
				m.On("Analyze", mock.Anything, mock.MatchedBy(func(req service.AnalyzeRequest) bool {
					return req.Locale == "en"
				})).Return(service.AnalyzeResponse{Locale: "en"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid json",
			body:       `{`,
			setupMock:  func(m *MockContentService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "record without key",
			body: `{"input":{},"record":true}`,
			setupMock: func(m *MockContentService) {
				m.On("Analyze", mock.Anything, mock.Anything).Return(service.AnalyzeResponse{}, errors.Invalid("docKey is required"))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockContentService)
			tt.setupMock(svc)

			rec := serve(t, svc, http.MethodPost, "/analyze", tt.body, tt.headers)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp service.AnalyzeResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantScore, resp.Score)
			} else {
				assert.Equal(t, tt.wantStatus, decodeError(t, rec).Code)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestDocumentSavedHandler(t *testing.T) {
	svc := new(MockContentService)
	svc.On("DocumentSaved", mock.Anything, mock.MatchedBy(func(doc models.RawDocument) bool {
		return doc.ID == "42" && doc.Collection == "posts"
	}), "").Return(models.AnalysisResult{Score: 55}, nil)

	rec := serve(t, svc, http.MethodPost, "/hooks/document-saved", `{"id":"42","collection":"posts","input":{}}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)

	rec = serve(t, svc, http.MethodPost, "/hooks/document-saved", `{"id":"42"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCorpusHandler(t *testing.T) {
	t.Run("link graph passes collections", func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("LinkGraph", mock.Anything, []string{"pages", "posts"}).Return(linkgraph.Graph{}, nil)

		rec := serve(t, svc, http.MethodGet, "/link-graph?collections=pages,+posts,", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("no source configured", func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("SitemapAudit", mock.Anything, []string(nil)).Return(linkgraph.Audit{}, errors.Wrap(errors.ErrUnavailable, "no source"))

		rec := serve(t, svc, http.MethodGet, "/sitemap-audit", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("research reads locale and max", func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("KeywordResearch", mock.Anything, []string(nil), "fr", 5).Return(keywords.Research{}, nil)

		rec := serve(t, svc, http.MethodGet, "/keywords/research?locale=fr&max=5", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("research rejects bad max", func(t *testing.T) {
		rec := serve(t, new(MockContentService), http.MethodGet, "/keywords/research?max=lots", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cannibalization failure", func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("Cannibalization", mock.Anything, []string{"posts"}, "").Return(keywords.Cannibalization{}, errors.New("boom"))

		rec := serve(t, svc, http.MethodGet, "/keywords/cannibalization?collections=posts", "", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLinkCheckHandler(t *testing.T) {
	svc := new(MockContentService)
	svc.On("CheckLinks", mock.Anything, []string{"https://a.example", "https://b.example"}).Return([]models.LinkStatus{
		{URL: "https://a.example", OK: true, StatusCode: 200},
		{URL: "https://b.example", StatusCode: 404, Category: models.LinkErrorHTTP},
	}, nil)

	rec := serve(t, svc, http.MethodPost, "/links/check", `{"urls":["https://a.example","https://b.example"]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp LinkCheckResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Broken)

	rec = serve(t, svc, http.MethodPost, "/links/check", `{"urls":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "CheckLinks", 1)
}

func TestScoreHistoryHandler(t *testing.T) {
	svc := new(MockContentService)
	svc.On("ScoreHistory", mock.Anything, "posts:42", 10).Return(nil, nil)

	rec := serve(t, svc, http.MethodGet, "/scores/posts:42/history?limit=10", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(t, svc, http.MethodGet, "/scores/posts:42/history?limit=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsHandler(t *testing.T) {
	svc := new(MockContentService)
	svc.On("Config", mock.Anything, "", (*models.SeoConfig)(nil)).Return(models.SeoConfig{SiteName: "Acme", Locale: "en"})
	svc.On("SaveSettings", mock.Anything, models.SeoConfig{SiteName: "Acme"}).Return(models.SeoConfig{SiteName: "Acme"}, nil)

	rec := serve(t, svc, http.MethodGet, "/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cfg models.SeoConfig
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cfg))
	assert.Equal(t, "Acme", cfg.SiteName)

	rec = serve(t, svc, http.MethodPut, "/settings", `{"siteName":"Acme"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(errors.Invalid("x")))
	assert.Equal(t, http.StatusNotFound, statusFor(errors.Wrap(errors.ErrNotFound, "x")))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(errors.Wrap(errors.ErrUnavailable, "x")))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("x")))
}
