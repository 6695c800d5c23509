package lexicon

import "strings"

// Registry maps locale codes onto tables.
type Registry struct {
	tables   map[string]Table
	fallback string
}

// NewRegistry builds a registry from tables; fallback names the table used for
// unknown locales and must be one of them.
func NewRegistry(fallback string, tables ...Table) *Registry {
	r := &Registry{tables: make(map[string]Table, len(tables)), fallback: fallback}
	for _, t := range tables {
		r.tables[t.Locale] = t
	}
	return r
}

var defaultRegistry = NewRegistry("en", English(), French())

// Default returns the built-in registry (en, fr).
func Default() *Registry {
	return defaultRegistry
}

// Get returns the table for a locale, matching on the language prefix
// ("fr-CA" -> "fr") and falling back to the registry default.
func (r *Registry) Get(locale string) Table {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if t, ok := r.tables[locale]; ok {
		return t
	}
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		if t, ok := r.tables[locale[:i]]; ok {
			return t
		}
	}
	return r.tables[r.fallback]
}

// Locales lists the registered locale codes.
func (r *Registry) Locales() []string {
	out := make([]string, 0, len(r.tables))
	for l := range r.tables {
		out = append(out, l)
	}
	return out
}

// Supports reports whether a locale has its own table.
func (r *Registry) Supports(locale string) bool {
	_, ok := r.tables[strings.ToLower(locale)]
	return ok
}
