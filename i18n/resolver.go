package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when the requested language has no entry
const DefaultLanguage = "en"

// Resolver maps message keys and language tags to display strings
type Resolver struct {
	tables          map[string]Table
	defaultLanguage string
	matcher         language.Matcher
	supported       []string
}

// Option represents resolver option
type Option func(r *Resolver)

// WithTable adds or replaces a language table
func WithTable(lang string, table Table) Option {
	return func(r *Resolver) {
		r.tables[base(lang)] = table
	}
}

// WithDefaultLanguage sets fallback language
func WithDefaultLanguage(lang string) Option {
	return func(r *Resolver) {
		r.defaultLanguage = base(lang)
	}
}

// Resolve returns display string for key in lang
func (r *Resolver) Resolve(key, lang string) string {
	if table, ok := r.tables[base(lang)]; ok {
		if text, ok := table[key]; ok && text != "" {
			return text
		}
	}
	if table, ok := r.tables[r.defaultLanguage]; ok {
		if text, ok := table[key]; ok && text != "" {
			return text
		}
	}
	return key
}

// Localizer binds the resolver to a language
func (r *Resolver) Localizer(lang string) Localizer {
	return func(key string) string {
		return r.Resolve(key, lang)
	}
}

// Supported returns supported base languages, default first
func (r *Resolver) Supported() []string {
	return append([]string{}, r.supported...)
}

// Match negotiates the best supported language for preferred tags, i.e. an
// Accept-Language header value or navigator.language; default when nothing matches
func (r *Resolver) Match(preferred ...string) string {
	var tags []language.Tag
	for _, candidate := range preferred {
		if candidate == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(candidate)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return r.defaultLanguage
	}
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return r.defaultLanguage
	}
	return r.supported[index]
}

// Localizer returns display string for key
type Localizer func(key string) string

func base(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(lang)
	}
	b, _ := tag.Base()
	return b.String()
}

// New creates a resolver with built-in tables
func New(options ...Option) *Resolver {
	ret := &Resolver{tables: Tables(), defaultLanguage: DefaultLanguage}
	for _, opt := range options {
		opt(ret)
	}
	ret.supported = []string{ret.defaultLanguage}
	var others []string
	for lang := range ret.tables {
		if lang != ret.defaultLanguage {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	ret.supported = append(ret.supported, others...)
	tags := make([]language.Tag, 0, len(ret.supported))
	for _, lang := range ret.supported {
		tags = append(tags, language.Make(lang))
	}
	ret.matcher = language.NewMatcher(tags)
	return ret
}
