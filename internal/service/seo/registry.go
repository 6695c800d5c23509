package seo

import (
	"content_intelligence/internal/domain/models"
)

// evaluator runs every check of one rule group.
type evaluator func(d *document) []models.Finding

// registry maps each rule group onto its evaluator. Every entry of
// models.AllRuleGroups must be present.
var registry = map[models.RuleGroup]evaluator{
	models.GroupTitle:             titleRules,
	models.GroupMeta:              metaRules,
	models.GroupHeadings:          headingRules,
	models.GroupURL:               urlRules,
	models.GroupContent:           contentRules,
	models.GroupSecondaryKeywords: secondaryKeywordRules,
	models.GroupImages:            imageRules,
	models.GroupLinking:           linkingRules,
	models.GroupCornerstone:       cornerstoneRules,
	models.GroupReadability:       readabilityRules,
	models.GroupFreshness:         freshnessRules,
	models.GroupSchema:            schemaRules,
	models.GroupTechnical:         technicalRules,
	models.GroupSocial:            socialRules,
	models.GroupAccessibility:     accessibilityRules,
	models.GroupQuality:           qualityRules,
	models.GroupEcommerce:         ecommerceRules,
}

func pass(id, label, message string) models.Finding {
	return models.Finding{ID: id, Label: label, Status: models.StatusPass, Message: message}
}

func warn(id, label, message, tip string) models.Finding {
	return models.Finding{ID: id, Label: label, Status: models.StatusWarning, Message: message, Tip: tip}
}

func fail(id, label, message, tip string) models.Finding {
	return models.Finding{ID: id, Label: label, Status: models.StatusFail, Message: message, Tip: tip}
}
