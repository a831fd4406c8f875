// Package numeric decides whether a bibliographic field holds numeric
// content, the way CSL's is-numeric condition does.
//
// Content is numeric if it is a plain number ("42", "-3.5"), an ordinal valid
// in the active locale ("2nd"), a Roman numeral ("IV"), or a list or range of
// numbers with optional one-letter affixes ("2, 3", "2-4", "2 & 4", "D2-D5").
// "second" and "2nd edition" are not numeric.
//
// Rules are tried in a fixed order and the first rule whose shape matches
// decides the result. A value shaped like an ordinal that the locale grammar
// rejects ("2rd") is non-numeric; it is not retried as a range.
//
// A Classifier is immutable and safe for concurrent use.
package numeric

import (
	"strings"

	"github.com/c360studio/citenum/ordinal"
)

// DefaultLocale is used when no locale is given.
const DefaultLocale = "en"

// Rule identifies the cascade rule that decided a value.
type Rule string

const (
	RuleNumeric Rule = "numeric"
	RuleOrdinal Rule = "ordinal"
	RuleRoman   Rule = "roman"
	RuleRange   Rule = "range"
	RuleNone    Rule = "none"
)

// Verdict is a classification together with the rule that produced it.
type Verdict struct {
	Numeric bool `json:"numeric"`
	Rule    Rule `json:"rule"`
}

// Input is a value to classify. CitationNumber is accepted for callers that
// evaluate conditions inside a citation and does not affect the result.
type Input struct {
	Value          string
	Locale         string
	CitationNumber *int
}

// Explainer classifies a value and reports which rule decided it.
type Explainer interface {
	Explain(value, locale string) Verdict
}

// rule pairs a shape check with the validation that runs once the shape matches.
type rule struct {
	name     Rule
	matches  func(value string) bool
	validate func(c *Classifier, value, locale string) bool
}

var cascade = []rule{
	{
		name:     RuleNumeric,
		matches:  plainNumberPattern.MatchString,
		validate: func(*Classifier, string, string) bool { return true },
	},
	{
		name:    RuleOrdinal,
		matches: ordinalPattern.MatchString,
		validate: func(c *Classifier, value, locale string) bool {
			_, err := c.ordinals.ParseOrdinal(value, locale)
			return err == nil
		},
	},
	{
		name:    RuleRoman,
		matches: romanPattern.MatchString,
		validate: func(c *Classifier, value, _ string) bool {
			_, err := DecodeRoman(value, c.romanMode)
			return err == nil
		},
	},
	{
		name:     RuleRange,
		matches:  rangePattern.MatchString,
		validate: func(*Classifier, string, string) bool { return true },
	},
}

// Classifier classifies field values as numeric or literal.
type Classifier struct {
	ordinals      ordinal.Parser
	romanMode     RomanMode
	defaultLocale string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithOrdinals sets the ordinal parser. Defaults to ordinal.DefaultRegistry.
func WithOrdinals(p ordinal.Parser) Option {
	return func(c *Classifier) {
		if p != nil {
			c.ordinals = p
		}
	}
}

// WithRomanMode sets Roman numeral strictness. Defaults to RomanLenient.
func WithRomanMode(m RomanMode) Option {
	return func(c *Classifier) {
		if m != "" {
			c.romanMode = m
		}
	}
}

// WithDefaultLocale sets the locale used when a call passes none.
func WithDefaultLocale(locale string) Option {
	return func(c *Classifier) {
		if locale = strings.TrimSpace(locale); locale != "" {
			c.defaultLocale = locale
		}
	}
}

// New creates a Classifier.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		ordinals:      ordinal.DefaultRegistry,
		romanMode:     RomanLenient,
		defaultLocale: DefaultLocale,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RomanMode returns the configured Roman numeral mode.
func (c *Classifier) RomanMode() RomanMode {
	return c.romanMode
}

// Classify reports whether value is numeric content in locale.
func (c *Classifier) Classify(value, locale string) bool {
	return c.Explain(value, locale).Numeric
}

// ClassifyInput classifies in.Value in in.Locale.
func (c *Classifier) ClassifyInput(in Input) bool {
	return c.Classify(in.Value, in.Locale)
}

// Explain classifies value and reports the deciding rule.
func (c *Classifier) Explain(value, locale string) Verdict {
	if strings.TrimSpace(locale) == "" {
		locale = c.defaultLocale
	}

	trimmed := strings.TrimSpace(value)
	for _, r := range cascade {
		if !r.matches(trimmed) {
			continue
		}
		return Verdict{Numeric: r.validate(c, trimmed, locale), Rule: r.name}
	}
	return Verdict{Rule: RuleNone}
}

// Rules returns the rule names in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(cascade))
	for i, r := range cascade {
		out[i] = r.name
	}
	return out
}

var defaultClassifier = New()

// Classify reports whether value is numeric content in locale using the
// default classifier.
func Classify(value, locale string) bool {
	return defaultClassifier.Classify(value, locale)
}
