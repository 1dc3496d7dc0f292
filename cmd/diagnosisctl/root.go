package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "diagnosisctl",
		Short:         "Inspect the diagnosis catalog and simulate sessions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newSimulateCmd())
	return root
}
