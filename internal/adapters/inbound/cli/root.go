package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "archforge",
		Short:         "Scaffold Clean Architecture features and audit layer conformance",
		Long:          "ArchForge deterministically scaffolds .NET Clean Architecture feature slices from an entity description and audits existing codebases for layer dependency violations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScaffoldCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newGraphCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show ArchForge version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "archforge %s (%s)\n", version, commit)
			return nil
		},
	}
}
