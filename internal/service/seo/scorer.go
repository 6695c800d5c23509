package seo

import (
	"math"

	"content_intelligence/internal/domain/models"
)

// Score turns findings into a 0-100 score: the group-weighted mean of the
// status weights. Findings of groups weighted 0 do not count.
func Score(checks []models.Finding, th models.Thresholds) int {
	th = th.WithDefaults()
	weights := th.StatusWeights

	var total, earned float64
	for _, c := range checks {
		gw := th.GroupWeight(c.Group)
		if gw == 0 {
			continue
		}
		total += gw
		switch c.Status {
		case models.StatusPass:
			earned += gw * weights.Pass
		case models.StatusWarning:
			earned += gw * weights.Warning
		case models.StatusFail:
			earned += gw * weights.Fail
		}
	}
	if total == 0 {
		return 0
	}
	score := int(math.Round(100 * earned / total))
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
