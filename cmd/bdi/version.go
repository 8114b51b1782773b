package main

import (
	"fmt"

	"github.com/Harshitk-cp/bdi/internal/buildconfig"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildconfig.VersionInfo()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bdi %s (commit %s, %s)\n", info["version"], info["commit"], info["go"])
			return err
		},
	}
}
