package service

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"content_intelligence/internal/application/config"
	"content_intelligence/internal/domain/adaptors"
	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/lexicon"
	"content_intelligence/internal/pkg/locale"
	"content_intelligence/internal/pkg/metrics"
	"content_intelligence/internal/pkg/textkit"
	"content_intelligence/internal/service/corpus"
	"content_intelligence/internal/service/keywords"
	"content_intelligence/internal/service/linkcheck"
	"content_intelligence/internal/service/linkgraph"
	"content_intelligence/internal/service/seo"

	log "github.com/sirupsen/logrus"
)

const (
	// MaxLinkChecks bounds the URLs accepted by one link check request.
	MaxLinkChecks = 500
	// DefaultHistoryLimit is the number of snapshots returned when none is asked.
	DefaultHistoryLimit = 50

	snapshotTimeout = 10 * time.Second
)

// Dependencies wires the collaborators of a ContentService. Writer, Settings
// and Scores are optional.
type Dependencies struct {
	Lexicons *lexicon.Registry
	Locales  *locale.Resolver
	Corpus   *corpus.Loader
	Checker  *linkcheck.Checker
	Writer   adaptors.DocumentWriter
	Settings adaptors.SettingsStore
	Scores   adaptors.ScoreStore
	Static   models.SeoConfig
}

// ContentService runs the analysis engines against request input and the
// loaded corpus.
type ContentService struct {
	log      *log.Logger
	engine   *seo.Engine
	lexicons *lexicon.Registry
	locales  *locale.Resolver
	corpus   *corpus.Loader
	checker  *linkcheck.Checker
	writer   adaptors.DocumentWriter
	settings adaptors.SettingsStore
	scores   adaptors.ScoreStore
	static   models.SeoConfig
	now      func() time.Time
	pending  sync.WaitGroup
}

func NewContentService(log *log.Logger, deps Dependencies) *ContentService {
	if deps.Lexicons == nil {
		deps.Lexicons = lexicon.Default()
	}
	if deps.Locales == nil {
		deps.Locales = locale.NewResolver(deps.Lexicons.Locales(), "en", "", nil)
	}
	return &ContentService{
		log:      log,
		engine:   seo.NewEngine(deps.Lexicons),
		lexicons: deps.Lexicons,
		locales:  deps.Locales,
		corpus:   deps.Corpus,
		checker:  deps.Checker,
		writer:   deps.Writer,
		settings: deps.Settings,
		scores:   deps.Scores,
		static:   deps.Static,
		now:      time.Now,
	}
}

type AnalyzeRequest struct {
	Input models.SeoInput `json:"input"`
	// HTML, when set, is imported as the body: post content for posts, a
	// trailing content block otherwise.
	HTML string `json:"html,omitempty"`
	// Config overrides the site configuration for this call only.
	Config *models.SeoConfig `json:"config,omitempty"`
	Locale string            `json:"locale,omitempty"`
	// DocKey identifies the document when a snapshot is recorded.
	DocKey     string `json:"docKey,omitempty"`
	Record     bool   `json:"record,omitempty"`
	CheckLinks bool   `json:"checkLinks,omitempty"`
}

type AnalyzeResponse struct {
	models.AnalysisResult
	Locale        string              `json:"locale"`
	ExternalLinks []models.LinkStatus `json:"externalLinks,omitempty"`
}

// Config merges the static configuration, the persisted settings and an
// optional per-call override, then resolves the locale.
func (s *ContentService) Config(ctx context.Context, requestLocale string, override *models.SeoConfig) models.SeoConfig {
	cfg := s.static
	if s.settings != nil {
		persisted, err := s.settings.LoadSettings(ctx)
		if err != nil {
			s.log.WithError(err).Warn(`failed to load persisted settings, using static config`)
		}
		cfg = config.MergeSeoConfig(cfg, persisted)
	}
	cfg = config.MergeSeoConfig(cfg, override)

	if requestLocale == "" && override != nil {
		requestLocale = override.Locale
	}
	if requestLocale == "" {
		requestLocale = cfg.Locale
	}
	cfg.Locale = s.locales.Resolve(requestLocale)
	return cfg
}

// SaveSettings persists the per-site settings.
func (s *ContentService) SaveSettings(ctx context.Context, cfg models.SeoConfig) (models.SeoConfig, error) {
	if s.settings == nil {
		return models.SeoConfig{}, errors.Wrap(errors.ErrUnavailable, `settings require a database`)
	}
	if err := s.settings.SaveSettings(ctx, cfg); err != nil {
		return models.SeoConfig{}, errors.Wrap(err, `failed to save settings`)
	}
	return s.Config(ctx, "", nil), nil
}

func (s *ContentService) Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResponse, error) {
	s.log.Debug(`analyze document started...`)
	if req.Record && req.DocKey == "" {
		return AnalyzeResponse{}, errors.Invalid(`docKey is required to record a snapshot`)
	}

	if req.HTML != "" {
		body, err := textkit.FromHTML(req.HTML)
		if err != nil {
			return AnalyzeResponse{}, errors.Wrap(errors.ErrInvalidInput, `failed to parse html: `+err.Error())
		}
		if req.Input.IsPost {
			req.Input.Content = body
		} else {
			req.Input.Blocks = append(req.Input.Blocks, models.Block{BlockType: `content`, RichText: body})
		}
	}

	cfg := s.Config(ctx, req.Locale, req.Config)
	result := s.analyze(req.Input, cfg)
	resp := AnalyzeResponse{AnalysisResult: result, Locale: cfg.Locale}

	if req.CheckLinks && s.checker != nil {
		resp.ExternalLinks = s.checker.Check(ctx, externalLinks(req.Input, cfg.SiteHost))
	}
	if req.Record {
		if err := s.recordSnapshot(ctx, req.DocKey, result); err != nil {
			s.log.WithError(err).WithField(`docKey`, req.DocKey).Warn(`failed to record score snapshot`)
		}
	}
	s.log.Debug(`analyze document ended...`)
	return resp, nil
}

// DocumentSaved reacts to a CMS write: the document is mirrored, the memoized
// corpus dropped, the document analyzed and its snapshot recorded in the
// background.
func (s *ContentService) DocumentSaved(ctx context.Context, doc models.RawDocument, requestLocale string) (models.AnalysisResult, error) {
	if doc.ID == "" || doc.Collection == "" {
		return models.AnalysisResult{}, errors.Invalid(`document id and collection are required`)
	}
	if s.writer != nil {
		if err := s.writer.Upsert(ctx, doc); err != nil {
			return models.AnalysisResult{}, errors.Wrap(err, `failed to store document`)
		}
	}
	if s.corpus != nil {
		s.corpus.Invalidate()
	}

	result := s.analyze(doc.Input, s.Config(ctx, requestLocale, nil))
	key := models.DocRecord{ID: doc.ID, Collection: doc.Collection}.Key()

	if s.scores != nil {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
			defer cancel()
			if err := s.recordSnapshot(ctx, key, result); err != nil {
				s.log.WithError(err).WithField(`docKey`, key).Warn(`failed to record score snapshot`)
			}
		}()
	}
	return result, nil
}

// Wait blocks until background snapshot writes have finished.
func (s *ContentService) Wait() {
	s.pending.Wait()
}

func (s *ContentService) LinkGraph(ctx context.Context, collections []string) (linkgraph.Graph, error) {
	docs, err := s.loadCorpus(ctx, collections)
	if err != nil {
		return linkgraph.Graph{}, err
	}
	cfg := s.Config(ctx, "", nil)
	return linkgraph.BuildLinkGraph(docs, siteHosts(cfg)...), nil
}

func (s *ContentService) SitemapAudit(ctx context.Context, collections []string) (linkgraph.Audit, error) {
	docs, err := s.loadCorpus(ctx, collections)
	if err != nil {
		return linkgraph.Audit{}, err
	}
	cfg := s.Config(ctx, "", nil)
	return linkgraph.AuditSitemap(docs, cfg.Redirects, cfg.KnownRoutes, siteHosts(cfg)...), nil
}

func (s *ContentService) KeywordResearch(ctx context.Context, collections []string, requestLocale string, maxPerType int) (keywords.Research, error) {
	docs, err := s.loadCorpus(ctx, collections)
	if err != nil {
		return keywords.Research{}, err
	}
	cfg := s.Config(ctx, requestLocale, nil)
	return keywords.ResearchKeywords(s.lexicons.Get(cfg.Locale), docs, keywords.Options{MaxPerType: maxPerType}), nil
}

func (s *ContentService) Cannibalization(ctx context.Context, collections []string, requestLocale string) (keywords.Cannibalization, error) {
	docs, err := s.loadCorpus(ctx, collections)
	if err != nil {
		return keywords.Cannibalization{}, err
	}
	var latest map[string]int
	if s.scores != nil {
		latest, err = s.scores.LatestScores(ctx)
		if err != nil {
			s.log.WithError(err).Warn(`failed to load latest scores, conflicts are reported without them`)
			latest = nil
		}
	}
	cfg := s.Config(ctx, requestLocale, nil)
	return keywords.DetectCannibalization(s.lexicons.Get(cfg.Locale), docs, latest), nil
}

func (s *ContentService) CheckLinks(ctx context.Context, urls []string) ([]models.LinkStatus, error) {
	if s.checker == nil {
		return nil, errors.Wrap(errors.ErrUnavailable, `link checker is not configured`)
	}
	if len(urls) == 0 {
		return nil, errors.Invalid(`urls is empty`)
	}
	if len(urls) > MaxLinkChecks {
		return nil, errors.Invalid(`too many urls`)
	}
	return s.checker.Check(ctx, urls), nil
}

func (s *ContentService) ScoreHistory(ctx context.Context, docKey string, limit int) ([]models.ScoreSnapshot, error) {
	if s.scores == nil {
		return nil, errors.Wrap(errors.ErrUnavailable, `score history requires a database`)
	}
	if docKey == "" {
		return nil, errors.Invalid(`docKey is empty`)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	history, err := s.scores.History(ctx, docKey, limit)
	if err != nil {
		return nil, errors.Wrap(err, `failed to load score history`)
	}
	return history, nil
}

func (s *ContentService) analyze(input models.SeoInput, cfg models.SeoConfig) models.AnalysisResult {
	result := s.engine.AnalyzeAt(input, cfg, s.now())
	metrics.SEOAnalysesTotal.WithLabelValues(string(result.Level)).Inc()
	metrics.SEOAnalysisScore.Observe(float64(result.Score))
	return result
}

func (s *ContentService) recordSnapshot(ctx context.Context, docKey string, result models.AnalysisResult) error {
	if s.scores == nil {
		return nil
	}
	counts := result.Counts()
	return s.scores.RecordSnapshot(ctx, models.ScoreSnapshot{
		DocKey:       docKey,
		Score:        result.Score,
		Level:        result.Level,
		FailCount:    counts[models.StatusFail],
		WarningCount: counts[models.StatusWarning],
		RecordedAt:   s.now().UTC(),
	})
}

func (s *ContentService) loadCorpus(ctx context.Context, collections []string) ([]models.DocRecord, error) {
	if s.corpus == nil {
		return nil, errors.Wrap(errors.ErrUnavailable, `no document source configured`)
	}
	docs, err := s.corpus.Load(ctx, collections)
	if err != nil {
		return nil, errors.Wrap(err, `failed to load corpus`)
	}
	return docs, nil
}

func siteHosts(cfg models.SeoConfig) []string {
	if cfg.SiteHost == "" {
		return nil
	}
	return []string{cfg.SiteHost}
}

// externalLinks lists the distinct absolute http(s) links of input that point
// outside siteHost.
func externalLinks(input models.SeoInput, siteHost string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range textkit.ExtractInput(input).Links {
		raw := strings.TrimSpace(l.URL)
		if strings.HasPrefix(raw, "//") {
			raw = "https:" + raw
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			continue
		}
		if _, internal := textkit.NormalizeToSlug(raw, siteHost); internal {
			continue
		}
		if !seen[raw] {
			seen[raw] = true
			out = append(out, raw)
		}
	}
	return out
}
