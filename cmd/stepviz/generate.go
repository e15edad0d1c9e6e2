// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateCmd = &cobra.Command{
	Use:   "generate [algorithm]",
	Short: "Record a run and print it as YAML or JSON",
	Example: `  stepviz generate selection-sort --params '{values: [5, 2, 4, 1, 3]}'
  stepviz generate kmp --params '{text: aaaa, pattern: aa}' --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "yaml" && format != "json" {
			return fmt.Errorf("unknown format %q: want yaml or json", format)
		}

		trace, err := buildTrace(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(trace)
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(trace); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	addRequestFlags(generateCmd)
	generateCmd.Flags().String("format", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(generateCmd)
}
