package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/citenum/numeric"
)

// classifyResult is one line of classify output.
type classifyResult struct {
	Value string `json:"value"`
	numeric.Verdict
}

func classifyCmd(a *app) *cobra.Command {
	var (
		locale     string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "classify [values...]",
		Short: "Classify values as numeric or literal",
		Long: `Classify each value and print value, result and deciding rule,
separated by tabs. Without arguments values are read from stdin, one per line.

Examples:
  citenum classify 42 2nd IV "1-5"
  citenum classify --locale fr 1er
  cut -f3 refs.tsv | citenum classify --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if len(values) == 0 {
				var err error
				values, err = readValues(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			results := make([]classifyResult, 0, len(values))
			for _, value := range values {
				results = append(results, classifyResult{
					Value:   value,
					Verdict: a.classifier.Explain(value, locale),
				})
			}

			out := cmd.OutOrStdout()
			if outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%t\t%s\n", r.Value, r.Numeric, r.Rule)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "Locale for ordinals (default from config)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output results as JSON")

	return cmd
}

// readValues reads one value per line, skipping blank lines.
func readValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values = append(values, line)
	}
	return values, scanner.Err()
}
