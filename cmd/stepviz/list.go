// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the algorithms stepviz can record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tFAMILY\tPARAMS\tSUMMARY")
		for _, info := range catalog.Infos() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Family, strings.Join(info.Params, ","), info.Summary)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
