package models

// RuleGroup names one independently disable-able group of checks.
type RuleGroup string

const (
	GroupTitle             RuleGroup = "title"
	GroupMeta              RuleGroup = "meta"
	GroupHeadings          RuleGroup = "headings"
	GroupURL               RuleGroup = "url"
	GroupContent           RuleGroup = "content"
	GroupSecondaryKeywords RuleGroup = "secondary-keywords"
	GroupImages            RuleGroup = "images"
	GroupLinking           RuleGroup = "linking"
	GroupCornerstone       RuleGroup = "cornerstone"
	GroupReadability       RuleGroup = "readability"
	GroupFreshness         RuleGroup = "freshness"
	GroupSchema            RuleGroup = "schema"
	GroupTechnical         RuleGroup = "technical"
	GroupSocial            RuleGroup = "social"
	GroupAccessibility     RuleGroup = "accessibility"
	GroupQuality           RuleGroup = "quality"
	GroupEcommerce         RuleGroup = "ecommerce"
)

// AllRuleGroups lists every group in evaluation order.
var AllRuleGroups = []RuleGroup{
	GroupTitle,
	GroupMeta,
	GroupHeadings,
	GroupURL,
	GroupContent,
	GroupSecondaryKeywords,
	GroupImages,
	GroupLinking,
	GroupCornerstone,
	GroupReadability,
	GroupFreshness,
	GroupSchema,
	GroupTechnical,
	GroupSocial,
	GroupAccessibility,
	GroupQuality,
	GroupEcommerce,
}

// SeoConfig is the read-only configuration of one analysis.
type SeoConfig struct {
	Locale        string      `json:"locale"`
	SiteName      string      `json:"siteName"`
	SiteHost      string      `json:"siteHost,omitempty"`
	DisabledRules []RuleGroup `json:"disabledRules,omitempty"`
	Thresholds    Thresholds  `json:"thresholds"`

	// Redirects and KnownRoutes feed the sitemap audit: redirected paths and
	// routes served outside the CMS are never reported as broken or orphaned.
	Redirects   []Redirect `json:"redirects,omitempty"`
	KnownRoutes []string   `json:"knownRoutes,omitempty"`
}

// IsDisabled reports whether a group was switched off. Unknown names in
// DisabledRules never match anything.
func (c SeoConfig) IsDisabled(group RuleGroup) bool {
	for _, g := range c.DisabledRules {
		if g == group {
			return true
		}
	}
	return false
}

// StatusWeights is the contribution of each status to the score.
type StatusWeights struct {
	Pass    float64 `json:"pass"`
	Warning float64 `json:"warning"`
	Fail    float64 `json:"fail"`
}

// Thresholds holds every tunable limit. Zero values fall back to the defaults.
type Thresholds struct {
	TitleMinLength           int     `json:"titleMinLength,omitempty"`
	TitleMaxLength           int     `json:"titleMaxLength,omitempty"`
	MetaDescriptionMinLength int     `json:"metaDescriptionMinLength,omitempty"`
	MetaDescriptionMaxLength int     `json:"metaDescriptionMaxLength,omitempty"`
	SlugMaxLength            int     `json:"slugMaxLength,omitempty"`
	SlugMaxDepth             int     `json:"slugMaxDepth,omitempty"`
	MinWordsPost             int     `json:"minWordsPost,omitempty"`
	MinWordsForm             int     `json:"minWordsForm,omitempty"`
	MinWordsLegal            int     `json:"minWordsLegal,omitempty"`
	MinWordsGeneric          int     `json:"minWordsGeneric,omitempty"`
	ThinContentWords         int     `json:"thinContentWords,omitempty"`
	KeywordDensityMin        float64 `json:"keywordDensityMin,omitempty"`
	KeywordDensityMax        float64 `json:"keywordDensityMax,omitempty"`
	KeywordDensityStuffed    float64 `json:"keywordDensityStuffed,omitempty"`
	WordsPerSubheading       int     `json:"wordsPerSubheading,omitempty"`
	MaxSecondaryKeywords     int     `json:"maxSecondaryKeywords,omitempty"`
	MinInternalLinks         int     `json:"minInternalLinks,omitempty"`
	MinExternalLinks         int     `json:"minExternalLinks,omitempty"`
	MaxImageBytes            int64   `json:"maxImageBytes,omitempty"`
	MaxAltLength             int     `json:"maxAltLength,omitempty"`
	SocialImageMinWidth      int     `json:"socialImageMinWidth,omitempty"`
	SocialImageMinHeight     int     `json:"socialImageMinHeight,omitempty"`
	CornerstoneMinWords      int     `json:"cornerstoneMinWords,omitempty"`
	CornerstoneMinLinks      int     `json:"cornerstoneMinLinks,omitempty"`
	CornerstoneMinH2         int     `json:"cornerstoneMinH2,omitempty"`
	CornerstoneMaxAgeDays    int     `json:"cornerstoneMaxAgeDays,omitempty"`
	ReadabilityGood          float64 `json:"readabilityGood,omitempty"`
	ReadabilityPoor          float64 `json:"readabilityPoor,omitempty"`
	LongSentenceWords        int     `json:"longSentenceWords,omitempty"`
	LongSentenceMaxPercent   float64 `json:"longSentenceMaxPercent,omitempty"`
	MaxParagraphWords        int     `json:"maxParagraphWords,omitempty"`
	PassiveMaxPercent        float64 `json:"passiveMaxPercent,omitempty"`
	TransitionMinPercent     float64 `json:"transitionMinPercent,omitempty"`
	FreshDays                int     `json:"freshDays,omitempty"`
	StaleDays                int     `json:"staleDays,omitempty"`
	EvergreenDays            int     `json:"evergreenDays,omitempty"`
	ReviewDays               int     `json:"reviewDays,omitempty"`

	StatusWeights *StatusWeights        `json:"statusWeights,omitempty"`
	GroupWeights  map[RuleGroup]float64 `json:"groupWeights,omitempty"`
}

// DefaultThresholds returns the built-in limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TitleMinLength:           30,
		TitleMaxLength:           60,
		MetaDescriptionMinLength: 120,
		MetaDescriptionMaxLength: 160,
		SlugMaxLength:            75,
		SlugMaxDepth:             3,
		MinWordsPost:             300,
		MinWordsForm:             50,
		MinWordsLegal:            200,
		MinWordsGeneric:          300,
		ThinContentWords:         100,
		KeywordDensityMin:        0.5,
		KeywordDensityMax:        2.5,
		KeywordDensityStuffed:    3.0,
		WordsPerSubheading:       300,
		MaxSecondaryKeywords:     5,
		MinInternalLinks:         1,
		MinExternalLinks:         1,
		MaxImageBytes:            500 * 1024,
		MaxAltLength:             125,
		SocialImageMinWidth:      1200,
		SocialImageMinHeight:     630,
		CornerstoneMinWords:      1500,
		CornerstoneMinLinks:      5,
		CornerstoneMinH2:         3,
		CornerstoneMaxAgeDays:    180,
		ReadabilityGood:          60,
		ReadabilityPoor:          30,
		LongSentenceWords:        20,
		LongSentenceMaxPercent:   25,
		MaxParagraphWords:        150,
		PassiveMaxPercent:        10,
		TransitionMinPercent:     30,
		FreshDays:                180,
		StaleDays:                365,
		EvergreenDays:            730,
		ReviewDays:               365,
		StatusWeights:            &StatusWeights{Pass: 1.0, Warning: 0.5, Fail: 0.0},
	}
}

// WithDefaults returns a copy where every unset limit takes its default.
func (t Thresholds) WithDefaults() Thresholds {
	d := DefaultThresholds()
	pickInt(&t.TitleMinLength, d.TitleMinLength)
	pickInt(&t.TitleMaxLength, d.TitleMaxLength)
	pickInt(&t.MetaDescriptionMinLength, d.MetaDescriptionMinLength)
	pickInt(&t.MetaDescriptionMaxLength, d.MetaDescriptionMaxLength)
	pickInt(&t.SlugMaxLength, d.SlugMaxLength)
	pickInt(&t.SlugMaxDepth, d.SlugMaxDepth)
	pickInt(&t.MinWordsPost, d.MinWordsPost)
	pickInt(&t.MinWordsForm, d.MinWordsForm)
	pickInt(&t.MinWordsLegal, d.MinWordsLegal)
	pickInt(&t.MinWordsGeneric, d.MinWordsGeneric)
	pickInt(&t.ThinContentWords, d.ThinContentWords)
	pickFloat(&t.KeywordDensityMin, d.KeywordDensityMin)
	pickFloat(&t.KeywordDensityMax, d.KeywordDensityMax)
	pickFloat(&t.KeywordDensityStuffed, d.KeywordDensityStuffed)
	pickInt(&t.WordsPerSubheading, d.WordsPerSubheading)
	pickInt(&t.MaxSecondaryKeywords, d.MaxSecondaryKeywords)
	pickInt(&t.MinInternalLinks, d.MinInternalLinks)
	pickInt(&t.MinExternalLinks, d.MinExternalLinks)
	if t.MaxImageBytes <= 0 {
		t.MaxImageBytes = d.MaxImageBytes
	}
	pickInt(&t.MaxAltLength, d.MaxAltLength)
	pickInt(&t.SocialImageMinWidth, d.SocialImageMinWidth)
	pickInt(&t.SocialImageMinHeight, d.SocialImageMinHeight)
	pickInt(&t.CornerstoneMinWords, d.CornerstoneMinWords)
	pickInt(&t.CornerstoneMinLinks, d.CornerstoneMinLinks)
	pickInt(&t.CornerstoneMinH2, d.CornerstoneMinH2)
	pickInt(&t.CornerstoneMaxAgeDays, d.CornerstoneMaxAgeDays)
	pickFloat(&t.ReadabilityGood, d.ReadabilityGood)
	pickFloat(&t.ReadabilityPoor, d.ReadabilityPoor)
	pickInt(&t.LongSentenceWords, d.LongSentenceWords)
	pickFloat(&t.LongSentenceMaxPercent, d.LongSentenceMaxPercent)
	pickInt(&t.MaxParagraphWords, d.MaxParagraphWords)
	pickFloat(&t.PassiveMaxPercent, d.PassiveMaxPercent)
	pickFloat(&t.TransitionMinPercent, d.TransitionMinPercent)
	pickInt(&t.FreshDays, d.FreshDays)
	pickInt(&t.StaleDays, d.StaleDays)
	pickInt(&t.EvergreenDays, d.EvergreenDays)
	pickInt(&t.ReviewDays, d.ReviewDays)
	if t.StatusWeights == nil {
		t.StatusWeights = d.StatusWeights
	}
	return t
}

// GroupWeight returns the configured weight of a group, 1 when unset.
func (t Thresholds) GroupWeight(group RuleGroup) float64 {
	if w, ok := t.GroupWeights[group]; ok && w >= 0 {
		return w
	}
	return 1.0
}

func pickInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func pickFloat(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
