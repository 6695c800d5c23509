// Package locale picks the analysis locale of a request.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Resolver maps request locales onto supported ones. Precedence: explicit
// locale, then the custom mapping, then the language prefix of the request
// locale, then the fallback.
type Resolver struct {
	explicit  string
	mapping   map[string]string
	supported []string
	fallback  string
	matcher   language.Matcher
}

// NewResolver builds a resolver. fallback is moved to the front of supported
// so that it wins Accept-Language ties.
func NewResolver(supported []string, fallback string, explicit string, mapping map[string]string) *Resolver {
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	r := &Resolver{
		explicit: strings.ToLower(strings.TrimSpace(explicit)),
		mapping:  map[string]string{},
		fallback: fallback,
	}
	r.supported = append(r.supported, fallback)
	for _, s := range supported {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && s != fallback {
			r.supported = append(r.supported, s)
		}
	}
	for k, v := range mapping {
		r.mapping[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}

	tags := make([]language.Tag, 0, len(r.supported))
	for _, s := range r.supported {
		tags = append(tags, language.Make(s))
	}
	r.matcher = language.NewMatcher(tags)
	return r
}

// Resolve returns the locale for a request locale such as "fr-CA".
func (r *Resolver) Resolve(requestLocale string) string {
	if r.supports(r.explicit) {
		return r.explicit
	}
	req := strings.ToLower(strings.TrimSpace(requestLocale))
	if mapped, ok := r.mapping[req]; ok && r.supports(mapped) {
		return mapped
	}
	if req == "" {
		return r.fallback
	}
	if r.supports(req) {
		return req
	}
	if tag, err := language.Parse(req); err == nil {
		base, _ := tag.Base()
		if r.supports(base.String()) {
			return base.String()
		}
	}
	return r.fallback
}

// FromAcceptLanguage resolves the best supported locale of an Accept-Language
// header. An explicit locale still wins.
func (r *Resolver) FromAcceptLanguage(header string) string {
	if r.supports(r.explicit) {
		return r.explicit
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return r.fallback
	}
	for _, t := range tags {
		if mapped, ok := r.mapping[strings.ToLower(t.String())]; ok && r.supports(mapped) {
			return mapped
		}
	}
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return r.fallback
	}
	return r.supported[index]
}

func (r *Resolver) supports(locale string) bool {
	if locale == "" {
		return false
	}
	for _, s := range r.supported {
		if s == locale {
			return true
		}
	}
	return false
}
