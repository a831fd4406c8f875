package source

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/citenum/numeric"
	"github.com/c360studio/citenum/vocabulary/csl"
)

// Scanner reports numeric content of CSL-JSON items.
type Scanner struct {
	explainer numeric.Explainer
	condition numeric.Condition
	logger    *slog.Logger

	// presentOnly combines over the variables an item has rather than the
	// full list. Set when the list defaults to every number variable.
	presentOnly bool
}

// NewScanner creates a scanner that classifies the given variables with e
// and combines them with match. With no variables every CSL number variable
// is inspected, and match applies to the ones present on each item.
func NewScanner(e numeric.Explainer, variables []string, match csl.Match, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	var names []string
	seen := make(map[string]bool)
	for _, v := range variables {
		if v = strings.TrimSpace(v); v != "" && !seen[v] {
			seen[v] = true
			names = append(names, v)
		}
	}
	presentOnly := len(names) == 0
	if presentOnly {
		for _, v := range csl.NumberVariables() {
			names = append(names, string(v))
		}
	}

	cond := numeric.NewCondition(strings.Join(names, " "), match).WithExplainer(e)
	return &Scanner{
		explainer:   e,
		condition:   cond,
		logger:      logger,
		presentOnly: presentOnly,
	}
}

// Variables returns the inspected variables.
func (s *Scanner) Variables() []string {
	return s.condition.Variables
}

// ScanItems reports on items loaded from file.
func (s *Scanner) ScanItems(file string, items []Item, locale string) []ItemReport {
	reports := make([]ItemReport, 0, len(items))
	for _, item := range items {
		itemLocale := locale
		if itemLocale == "" {
			if lang, ok := item.Fields["language"].(string); ok {
				itemLocale = lang
			}
		}

		report := ItemReport{
			File:   file,
			ID:     item.ID,
			Fields: make(map[string]numeric.Verdict),
		}
		for _, name := range s.condition.Variables {
			v, ok := numeric.ExplainValue(s.explainer, item.Fields[name], itemLocale)
			if !ok {
				continue
			}
			report.Fields[name] = v
		}
		// Combine the verdicts already computed so each value is classified once.
		passed := 0
		for _, v := range report.Fields {
			if v.Numeric {
				passed++
			}
		}
		total := len(s.condition.Variables)
		if s.presentOnly {
			total = len(report.Fields)
		}
		report.Numeric = s.condition.Match.Combine(passed, total)
		reports = append(reports, report)
	}
	return reports
}

// ScanFile loads a CSL-JSON file and reports on its items. An empty locale
// lets each item's "language" field select the ordinal grammar.
func (s *Scanner) ScanFile(path, locale string) ([]ItemReport, error) {
	items, err := LoadItems(path)
	if err != nil {
		return nil, err
	}

	reports := s.ScanItems(path, items, locale)
	s.logger.Debug("Scanned bibliography file",
		"path", path,
		"items", len(items))
	return reports, nil
}

// ScanFiles scans every file, logging and skipping files that fail to load.
// It returns an error only when no file could be scanned.
func (s *Scanner) ScanFiles(paths []string, locale string) ([]ItemReport, error) {
	var (
		all    []ItemReport
		failed int
	)
	for _, path := range paths {
		reports, err := s.ScanFile(path, locale)
		if err != nil {
			failed++
			s.logger.Warn("Failed to scan file", "path", path, "error", err)
			continue
		}
		all = append(all, reports...)
	}

	if failed > 0 && failed == len(paths) {
		return nil, fmt.Errorf("all %d files failed to scan", failed)
	}
	return all, nil
}
