package numeric

import (
	"encoding/json"
	"math"

	"github.com/c360studio/citenum/vocabulary/csl"
)

// Condition is the CSL is-numeric test over one or more item variables.
//
//	<if is-numeric="volume issue" match="any">
type Condition struct {
	Variables []string
	Match     csl.Match

	explainer Explainer
}

// NewCondition builds a condition from a space-separated variable list using
// the default classifier.
func NewCondition(variables string, match csl.Match) Condition {
	return Condition{
		Variables: csl.SplitVariables(variables),
		Match:     match,
		explainer: defaultClassifier,
	}
}

// Condition builds an is-numeric condition evaluated by c.
func (c *Classifier) Condition(variables string, match csl.Match) Condition {
	cond := NewCondition(variables, match)
	cond.explainer = c
	return cond
}

// WithExplainer returns a copy of the condition evaluated by e. Used to route
// evaluation through an instrumented classifier.
func (cond Condition) WithExplainer(e Explainer) Condition {
	cond.explainer = e
	return cond
}

// Validate evaluates the condition against a CSL item. A missing or
// non-scalar variable tests false. citationNumber is accepted for callers
// evaluating inside a citation and does not affect the result.
func (cond Condition) Validate(item map[string]any, locale string, citationNumber *int) bool {
	if len(cond.Variables) == 0 {
		return false
	}

	e := cond.explainer
	if e == nil {
		e = defaultClassifier
	}

	passed := 0
	for _, name := range cond.Variables {
		v, ok := ExplainValue(e, item[name], locale)
		if ok && v.Numeric {
			passed++
		}
	}

	return cond.Match.Combine(passed, len(cond.Variables))
}

// ExplainValue classifies a decoded CSL-JSON value. ok is false when the value
// is missing or of a type that cannot hold numeric content.
func ExplainValue(e Explainer, value any, locale string) (v Verdict, ok bool) {
	switch x := value.(type) {
	case nil:
		return Verdict{Rule: RuleNone}, false
	case string:
		return e.Explain(x, locale), true
	case json.Number:
		return e.Explain(x.String(), locale), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Verdict{Rule: RuleNone}, true
		}
		return Verdict{Numeric: true, Rule: RuleNumeric}, true
	case float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Verdict{Numeric: true, Rule: RuleNumeric}, true
	default:
		return Verdict{Rule: RuleNone}, false
	}
}
