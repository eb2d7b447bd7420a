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

func newGraphCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the active layer dependency rules",
		Long:  "Render the layer rule table the project audits against: the default Clean Architecture rules or the layer_rules override from .archforge.yaml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewAuditService(config.New(), scanner.New(), gitinfo.New())

			graph, err := svc.ActiveGraph(path)
			if err != nil {
				return fmt.Errorf("loading layer rules: %w", err)
			}

			if jsonOutput {
				table := make(map[domain.LayerID][]domain.LayerID)
				for _, l := range graph.Layers() {
					table[l] = graph.AllowedTargets(l)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(table)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLayerGraph(graph))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Project path")

	return cmd
}
