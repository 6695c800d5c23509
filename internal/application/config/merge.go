package config

import (
	"encoding/json"

	"content_intelligence/internal/domain/models"
)

// MergeSeoConfig layers persisted per-site settings over the static config.
// Set fields of persisted win. Disabled groups, known routes and redirects
// are combined and group weights are merged key by key. A nil persisted returns static unchanged.
func MergeSeoConfig(static models.SeoConfig, persisted *models.SeoConfig) models.SeoConfig {
	if persisted == nil {
		return static
	}
	out := static
	if persisted.Locale != "" {
		out.Locale = persisted.Locale
	}
	if persisted.SiteName != "" {
		out.SiteName = persisted.SiteName
	}
	if persisted.SiteHost != "" {
		out.SiteHost = persisted.SiteHost
	}

	out.DisabledRules = nil
	seen := map[models.RuleGroup]bool{}
	for _, g := range append(append([]models.RuleGroup{}, static.DisabledRules...), persisted.DisabledRules...) {
		if !seen[g] {
			seen[g] = true
			out.DisabledRules = append(out.DisabledRules, g)
		}
	}

	out.KnownRoutes = nil
	routes := map[string]bool{}
	for _, r := range append(append([]string{}, static.KnownRoutes...), persisted.KnownRoutes...) {
		if !routes[r] {
			routes[r] = true
			out.KnownRoutes = append(out.KnownRoutes, r)
		}
	}
	out.Redirects = append(append([]models.Redirect{}, static.Redirects...), persisted.Redirects...)

	out.Thresholds = mergeThresholds(static.Thresholds, persisted.Thresholds)
	return out
}

// mergeThresholds overlays the non-zero fields of override onto base. Zero
// fields are omitted from the JSON form, which is what makes the overlay work.
func mergeThresholds(base, override models.Thresholds) models.Thresholds {
	weights := map[models.RuleGroup]float64{}
	for g, w := range base.GroupWeights {
		weights[g] = w
	}
	for g, w := range override.GroupWeights {
		weights[g] = w
	}

	fields := map[string]json.RawMessage{}
	for _, t := range []models.Thresholds{base, override} {
		t.GroupWeights = nil
		raw, err := json.Marshal(t)
		if err != nil {
			return base
		}
		var layer map[string]json.RawMessage
		if err := json.Unmarshal(raw, &layer); err != nil {
			return base
		}
		for k, v := range layer {
			fields[k] = v
		}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return base
	}
	var merged models.Thresholds
	if err := json.Unmarshal(raw, &merged); err != nil {
		return base
	}
	if len(weights) > 0 {
		merged.GroupWeights = weights
	}
	return merged
}
