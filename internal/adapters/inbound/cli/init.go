package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/archforge/archforge/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".archforge.yaml"

func newInitCmd() *cobra.Command {
	var (
		bundle string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .archforge.yaml configuration file",
		Long:  "Create a .archforge.yaml with the default layer rules and a chosen template bundle.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			b := domain.BundleName(bundle)
			valid := false
			for _, vb := range domain.ValidBundles {
				if b == vb {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("unknown bundle %q (valid: fastendpoints, minimal-api)", bundle)
			}

			if err := os.WriteFile(dest, []byte(configContent(b)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&bundle, "bundle", string(domain.BundleFastEndpoints), "Template bundle (fastendpoints, minimal-api)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .archforge.yaml")

	return cmd
}

func configContent(bundle domain.BundleName) string {
	return fmt.Sprintf(`# ArchForge project configuration
bundle: %s
root_namespace: App
source_root: src

# Layers to scaffold. Remove entries to skip layers.
layers:
  - domain
  - infrastructure
  - presentation
  - test

# Dependency rules. Uncomment to replace the default Clean Architecture
# table. Each layer lists the layers it may depend on; rules are
# transitively closed and must stay acyclic.
# layer_rules:
#   domain: []
#   infrastructure: [domain]
#   presentation: [domain]
#   test: [domain, infrastructure, presentation]

# Extra path/namespace segment aliases for the audit scanner.
# layer_aliases:
#   Services: infrastructure

# Glob patterns excluded from the audit scan.
# exclude_paths:
#   - "**/Migrations/**"
`, bundle)
}
