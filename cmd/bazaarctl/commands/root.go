// Package commands implements the bazaarctl operator CLI.
package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var asJSON bool

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bazaarctl",
		Short:         "Operator tooling for the marketplace BFF",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print machine-readable JSON")

	root.AddCommand(roleCmd(), dashboardCmd(), hashKeyCmd())

	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
