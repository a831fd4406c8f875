// Package ordinal parses locale-specific ordinal numbers such as "2nd",
// "1er", "3º" or "5-й".
//
// Grammars are registered per language in a Registry. Locale tags are matched
// with golang.org/x/text/language, so regional variants ("en-GB", "pt_BR")
// resolve to their base grammar, and unknown or empty locales fall back to
// the registry default.
package ordinal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// ErrNotOrdinal is returned when a value is not a valid ordinal in the
// selected grammar.
var ErrNotOrdinal = errors.New("not an ordinal")

// Parser parses ordinal numbers for a locale.
type Parser interface {
	// ParseOrdinal returns the number expressed by value, or an error
	// wrapping ErrNotOrdinal when the value is not an ordinal in locale.
	ParseOrdinal(value, locale string) (int, error)
}

// Grammar describes the ordinal forms of one language.
type Grammar interface {
	// Tag returns the language this grammar serves.
	Tag() language.Tag

	// Accepts reports whether digits n written with separator sep and
	// suffix is a valid ordinal. suffix is already lower-cased.
	Accepts(n int, sep, suffix string) bool
}

// ordinalPattern splits an ordinal into digits, optional separator and suffix.
var ordinalPattern = regexp.MustCompile(`^(\d+)([.\-]?)([\p{L}º°ª]+)$`)

// Registry manages ordinal grammars.
type Registry struct {
	mu         sync.RWMutex
	grammars   map[string]Grammar // keyed by tag string
	tags       []language.Tag
	matcher    language.Matcher
	defaultTag language.Tag
}

// DefaultRegistry is the global registry with the built-in grammars.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry with the built-in grammars and English as
// the fallback language.
func NewRegistry() *Registry {
	r := NewEmptyRegistry(language.English)

	r.Register(English())
	r.Register(French())
	r.Register(German())
	r.Register(Spanish())
	r.Register(Italian())
	r.Register(Portuguese())
	r.Register(Dutch())
	r.Register(Russian())

	return r
}

// NewEmptyRegistry creates a registry without grammars. fallback is used for
// empty, malformed or unmatched locales once a grammar for it is registered.
func NewEmptyRegistry(fallback language.Tag) *Registry {
	return &Registry{
		grammars:   make(map[string]Grammar),
		defaultTag: fallback,
	}
}

// Register adds a grammar, replacing any grammar for the same language.
func (r *Registry) Register(g Grammar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tag := g.Tag()
	if _, exists := r.grammars[tag.String()]; !exists {
		r.tags = append(r.tags, tag)
	}
	r.grammars[tag.String()] = g
	r.matcher = language.NewMatcher(r.supportedLocked())
}

// supportedLocked returns the registered tags with the fallback first, which
// is what language.Matcher returns when nothing matches.
func (r *Registry) supportedLocked() []language.Tag {
	supported := make([]language.Tag, 0, len(r.tags))
	def := r.defaultTag.String()
	if _, ok := r.grammars[def]; ok {
		supported = append(supported, r.defaultTag)
	}
	for _, t := range r.tags {
		if t.String() != def {
			supported = append(supported, t)
		}
	}
	return supported
}

// Lookup returns the grammar for locale, falling back to the default
// language. It returns nil only when the registry is empty.
func (r *Registry) Lookup(locale string) Grammar {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.grammars) == 0 {
		return nil
	}

	fallback, ok := r.grammars[r.defaultTag.String()]
	if !ok {
		fallback = r.grammars[r.tags[0].String()]
	}

	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return fallback
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return fallback
	}

	// Direct match on the base language
	if base, conf := tag.Base(); conf != language.No {
		if g, ok := r.grammars[base.String()]; ok {
			return g
		}
	}

	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	supported := r.supportedLocked()
	if idx < 0 || idx >= len(supported) {
		return fallback
	}
	return r.grammars[supported[idx].String()]
}

// ParseOrdinal parses value with the grammar selected for locale.
func (r *Registry) ParseOrdinal(value, locale string) (int, error) {
	g := r.Lookup(locale)
	if g == nil {
		return 0, fmt.Errorf("%w: no grammar registered for %q", ErrNotOrdinal, locale)
	}
	return Parse(g, value)
}

// Locales returns the registered language tags, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.tags))
	for _, t := range r.tags {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

// Parse parses value as an ordinal of grammar g.
func Parse(g Grammar, value string) (int, error) {
	m := ordinalPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrNotOrdinal, value)
	}

	n, check := parseDigits(m[1])
	if !g.Accepts(check, m[2], strings.ToLower(m[3])) {
		return 0, fmt.Errorf("%w: %q in %s", ErrNotOrdinal, value, g.Tag())
	}
	return n, nil
}

// parseDigits returns the value of a digit run and the number the grammar
// checks. Runs beyond the int range saturate at math.MaxInt and are checked
// as a four-digit number with the same last three digits.
func parseDigits(digits string) (n, check int) {
	if v, err := strconv.Atoi(digits); err == nil {
		return v, v
	}
	low, _ := strconv.Atoi(digits[len(digits)-3:])
	return math.MaxInt, 1000 + low
}

// ParseOrdinal parses value using DefaultRegistry.
func ParseOrdinal(value, locale string) (int, error) {
	return DefaultRegistry.ParseOrdinal(value, locale)
}
