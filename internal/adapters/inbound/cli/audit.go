package cli

import (
	"encoding/json"
	"fmt"

	"github.com/archforge/archforge/internal/adapters/outbound/config"
	"github.com/archforge/archforge/internal/adapters/outbound/gitinfo"
	"github.com/archforge/archforge/internal/adapters/outbound/scanner"
	"github.com/archforge/archforge/internal/adapters/outbound/tui"
	"github.com/archforge/archforge/internal/application"
	"github.com/archforge/archforge/internal/domain"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		maxAllowed string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit the project's layer dependency conformance",
		Long:  "Extract dependency facts from the project's sources and report every edge that breaks the configured layer rules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewAuditService(config.New(), scanner.New(), gitinfo.New())

			report, err := svc.AuditProject(path)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAuditReport(report))
			}

			if ciMode && failsThreshold(report, maxAllowed) {
				return fmt.Errorf("audit found %d violations at or above severity %q", len(report.Violations), maxAllowed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 on violations at or above --fail-on")
	cmd.Flags().StringVar(&maxAllowed, "fail-on", domain.SeverityLow, "Minimum severity that fails CI mode (high, medium, low)")
	cmd.Flags().StringVar(&path, "path", ".", "Project path to audit")

	return cmd
}

// failsThreshold reports whether any violation meets or exceeds the
// severity threshold.
func failsThreshold(report *domain.AuditReport, threshold string) bool {
	rank := map[string]int{domain.SeverityLow: 1, domain.SeverityMedium: 2, domain.SeverityHigh: 3}
	min, ok := rank[threshold]
	if !ok {
		min = rank[domain.SeverityLow]
	}
	for _, v := range report.Violations {
		if rank[v.Severity] >= min {
			return true
		}
	}
	return false
}
