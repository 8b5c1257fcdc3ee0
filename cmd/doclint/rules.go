package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"doclint/internal/diag"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the documentation rules and their severities",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSEVERITY\tDESCRIPTION")
		for _, code := range diag.Codes() {
			sev := "warning"
			if code.DefaultSeverity() == diag.SevError {
				sev = "error"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", code.ID(), sev, code.Title())
		}
		return w.Flush()
	},
}
