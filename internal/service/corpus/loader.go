// Package corpus loads every document of the configured collections and
// prepares them for site-wide analysis.
package corpus

import (
	"context"
	"sort"
	"strings"
	"time"

	"content_intelligence/internal/domain/adaptors"
	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/metrics"
	"content_intelligence/internal/pkg/textkit"
	"content_intelligence/internal/pkg/tokenizer"
	"content_intelligence/internal/pkg/ttlcache"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// PageSize is the number of documents requested per fetch.
	PageSize = 500
	// maxPages stops paging through a source that ignores offsets.
	maxPages = 200
)

type Loader struct {
	log         *log.Logger
	source      adaptors.DocumentSource
	collections []string
	cache       *ttlcache.Cache[[]models.DocRecord]
}

// NewLoader returns a loader over source. collections is the default set used
// when a caller names none; ttl bounds how long a loaded corpus is reused.
func NewLoader(log *log.Logger, source adaptors.DocumentSource, collections []string, ttl time.Duration) *Loader {
	return &Loader{
		log:         log,
		source:      source,
		collections: collections,
		cache:       ttlcache.New[[]models.DocRecord](ttl),
	}
}

// Load returns the documents of collections, in collection order. A
// collection that fails to load is logged and skipped.
func (l *Loader) Load(ctx context.Context, collections []string) ([]models.DocRecord, error) {
	if len(collections) == 0 {
		collections = l.collections
	}
	collections = distinct(collections)
	key := cacheKey(collections)

	if docs, ok := l.cache.Get(key); ok {
		metrics.CorpusCacheRequestsTotal.WithLabelValues(`hit`).Inc()
		return docs, nil
	}
	metrics.CorpusCacheRequestsTotal.WithLabelValues(`miss`).Inc()
	gen := l.cache.Generation()

	perCollection := make([][]models.DocRecord, len(collections))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range collections {
		g.Go(func() error {
			docs, err := l.fetchAll(gctx, name)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				metrics.CorpusSourceErrorsTotal.WithLabelValues(name).Inc()
				l.log.WithError(err).WithField(`collection`, name).Warn(`skipping collection that failed to load`)
				return nil
			}
			metrics.CorpusDocumentsLoaded.WithLabelValues(name).Set(float64(len(docs)))
			perCollection[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, `corpus load cancelled`)
	}

	docs := []models.DocRecord{}
	for _, c := range perCollection {
		docs = append(docs, c...)
	}
	if !l.cache.SetIfGeneration(key, docs, gen) {
		l.log.Debug(`corpus changed during load, result not cached`)
	}
	l.log.Debugf(`loaded %d documents from %d collections`, len(docs), len(collections))
	return docs, nil
}

// Invalidate drops every memoized corpus. It is called whenever a document
// is saved.
func (l *Loader) Invalidate() {
	l.cache.Purge()
}

func (l *Loader) fetchAll(ctx context.Context, collection string) ([]models.DocRecord, error) {
	var out []models.DocRecord
	for page := 0; page < maxPages; page++ {
		raws, err := l.source.Fetch(ctx, collection, PageSize, page*PageSize)
		if err != nil {
			return nil, errors.Wrap(err, `failed to fetch `+collection)
		}
		for _, raw := range raws {
			if raw.Collection == "" {
				raw.Collection = collection
			}
			out = append(out, ToDocRecord(raw))
		}
		if len(raws) < PageSize {
			return out, nil
		}
	}
	l.log.WithField(`collection`, collection).Warnf(`stopped paging after %d pages`, maxPages)
	return out, nil
}

// ToDocRecord flattens a raw document into the record used by the link graph
// and keyword engines.
func ToDocRecord(raw models.RawDocument) models.DocRecord {
	ex := textkit.ExtractInput(raw.Input)
	text := ex.PlainText()
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = strings.TrimSpace(raw.Input.MetaTitle)
	}
	if title == "" {
		title = raw.Input.Slug
	}
	return models.DocRecord{
		ID:            raw.ID,
		Title:         title,
		Slug:          raw.Input.Slug,
		Collection:    raw.Collection,
		FocusKeyword:  raw.Input.FocusKeyword,
		FocusKeywords: raw.Input.FocusKeywords,
		FullText:      text,
		WordCount:     tokenizer.CountWords(text),
		Links:         ex.Links,
	}
}

func distinct(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func cacheKey(collections []string) string {
	sorted := append([]string(nil), collections...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
