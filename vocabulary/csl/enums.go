package csl

import (
	"fmt"
	"strings"
)

// Variable is a CSL variable name as it appears in CSL-JSON items.
type Variable string

// Number variables (CSL 1.0.2, Appendix IV).
const (
	VariableChapterNumber            Variable = "chapter-number"
	VariableCitationNumber           Variable = "citation-number"
	VariableCollectionNumber         Variable = "collection-number"
	VariableEdition                  Variable = "edition"
	VariableFirstReferenceNoteNumber Variable = "first-reference-note-number"
	VariableIssue                    Variable = "issue"
	VariableLocator                  Variable = "locator"
	VariableNumber                   Variable = "number"
	VariableNumberOfPages            Variable = "number-of-pages"
	VariableNumberOfVolumes          Variable = "number-of-volumes"
	VariablePage                     Variable = "page"
	VariablePageFirst                Variable = "page-first"
	VariablePartNumber               Variable = "part-number"
	VariablePrintingNumber           Variable = "printing-number"
	VariableSection                  Variable = "section"
	VariableSupplementNumber         Variable = "supplement-number"
	VariableVersion                  Variable = "version"
	VariableVolume                   Variable = "volume"
)

var numberVariables = []Variable{
	VariableChapterNumber,
	VariableCitationNumber,
	VariableCollectionNumber,
	VariableEdition,
	VariableFirstReferenceNoteNumber,
	VariableIssue,
	VariableLocator,
	VariableNumber,
	VariableNumberOfPages,
	VariableNumberOfVolumes,
	VariablePage,
	VariablePageFirst,
	VariablePartNumber,
	VariablePrintingNumber,
	VariableSection,
	VariableSupplementNumber,
	VariableVersion,
	VariableVolume,
}

// NumberVariables returns the CSL number variables in the order CSL lists them.
func NumberVariables() []Variable {
	out := make([]Variable, len(numberVariables))
	copy(out, numberVariables)
	return out
}

// IsNumberVariable reports whether name is a CSL number variable.
func IsNumberVariable(name string) bool {
	for _, v := range numberVariables {
		if string(v) == name {
			return true
		}
	}
	return false
}

// Match selects how a condition combines the results of its variables.
type Match string

const (
	// MatchAll requires every variable to pass. This is the CSL default.
	MatchAll Match = "all"

	// MatchAny requires at least one variable to pass.
	MatchAny Match = "any"

	// MatchNone requires that no variable passes.
	MatchNone Match = "none"
)

// ParseMatch parses a match attribute. An empty string yields MatchAll.
func ParseMatch(s string) (Match, error) {
	switch Match(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchAll:
		return MatchAll, nil
	case MatchAny:
		return MatchAny, nil
	case MatchNone:
		return MatchNone, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want all, any or none)", s)
	}
}

// Combine reports whether a condition over total variables, of which passed
// tested true, holds under m. An empty Match behaves as MatchAll. A
// condition without variables never holds.
func (m Match) Combine(passed, total int) bool {
	if total == 0 {
		return false
	}
	switch m {
	case MatchAny:
		return passed > 0
	case MatchNone:
		return passed == 0
	default:
		return passed == total
	}
}

// SplitVariables splits a space-separated CSL variable list, as used in
// attributes like is-numeric="volume issue".
func SplitVariables(attr string) []string {
	return strings.Fields(attr)
}
