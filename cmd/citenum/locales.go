package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/citenum/ordinal"
)

func localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales with ordinal grammars",
		Long: `List the locales whose ordinal suffixes are recognised. Other locales
resolve to the closest listed language, or to English.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, locale := range ordinal.DefaultRegistry.Locales() {
				fmt.Fprintln(cmd.OutOrStdout(), locale)
			}
			return nil
		},
	}
}
