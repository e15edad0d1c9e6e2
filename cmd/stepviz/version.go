// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stepviz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stepviz version %s\n", stepviz.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
