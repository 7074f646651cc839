// Package cli implements the marketplace command line: the API server and
// local tools that run against the configured store.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estimatecheck/marketplace/internal/config"
	"github.com/estimatecheck/marketplace/internal/version"
)

// Options are the persistent flags shared by every subcommand.
type Options struct {
	Env        string
	ConfigPath string
}

// NewRootCmd creates the marketplace command tree.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "marketplace",
		Short:         "Materials marketplace search service",
		Long:          "Runs the marketplace API server and queries or seeds the configured store.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", config.GetEnv(), "Environment (selects config/<env>.yaml)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file path (overrides --env lookup)")

	cmd.AddCommand(ServeCmd(opts))
	cmd.AddCommand(SearchCmd(opts))
	cmd.AddCommand(VendorsCmd(opts))
	cmd.AddCommand(SeedCmd(opts))
	cmd.AddCommand(VersionCmd())

	return cmd
}

// VersionCmd prints build information.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
