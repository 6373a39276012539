package main

import (
	"github.com/spf13/cobra"

	"github.com/oxhq/codescope/capsules/catalog"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := catalog.DefaultRegistry()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), reg.Languages())
		},
	}
}
