// Package seo is the single-document analysis engine: rule groups evaluated
// over a normalized document and aggregated into a weighted score.
package seo

import (
	"time"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/lexicon"
)

// Engine evaluates documents against the registered rule groups using the
// locale tables of its lexicon registry.
type Engine struct {
	lexicons *lexicon.Registry
}

func NewEngine(lexicons *lexicon.Registry) *Engine {
	if lexicons == nil {
		lexicons = lexicon.Default()
	}
	return &Engine{lexicons: lexicons}
}

// Analyze scores input with the wall clock captured once as the reference
// time of every freshness rule.
func (e *Engine) Analyze(input models.SeoInput, cfg models.SeoConfig) models.AnalysisResult {
	return e.AnalyzeAt(input, cfg, time.Now())
}

// AnalyzeAt scores input against now. Same input, config and now always give
// the same result.
func (e *Engine) AnalyzeAt(input models.SeoInput, cfg models.SeoConfig, now time.Time) models.AnalysisResult {
	doc := newDocument(input, cfg, e.lexicons.Get(cfg.Locale), now)

	checks := make([]models.Finding, 0, 64)
	for _, group := range models.AllRuleGroups {
		if cfg.IsDisabled(group) {
			continue
		}
		eval, ok := registry[group]
		if !ok {
			continue
		}
		for _, f := range eval(doc) {
			f.Group = group
			checks = append(checks, f)
		}
	}

	score := Score(checks, cfg.Thresholds)
	return models.AnalysisResult{
		Score:  score,
		Level:  models.LevelForScore(score),
		Checks: checks,
	}
}

// Analyze runs the default engine.
func Analyze(input models.SeoInput, cfg models.SeoConfig) models.AnalysisResult {
	return defaultEngine.Analyze(input, cfg)
}

var defaultEngine = NewEngine(lexicon.Default())
