package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/archforge/archforge/internal/adapters/outbound/config"
	"github.com/archforge/archforge/internal/adapters/outbound/tui"
	"github.com/archforge/archforge/internal/adapters/outbound/writer"
	"github.com/archforge/archforge/internal/application"
	"github.com/archforge/archforge/internal/domain"
	"github.com/spf13/cobra"
)

func newScaffoldCmd() *cobra.Command {
	var (
		properties    string
		relationships string
		known         []string
		layerNames    []string
		aggregateRoot bool
		dryRun        bool
		force         bool
		jsonOutput    bool
		path          string
	)

	cmd := &cobra.Command{
		Use:   "scaffold <entity>",
		Short: "Scaffold a Clean Architecture feature slice for an entity",
		Long:  "Generate entity, repository, EF configuration, endpoint, and test files across the configured layers from a property description.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, err := parseLayerFlags(layerNames)
			if err != nil {
				return err
			}

			svc := application.NewScaffoldService(config.New(), writer.New())

			artifacts, err := svc.Scaffold(path, application.ScaffoldRequest{
				EntityName:       args[0],
				RawProperties:    properties,
				RawRelationships: relationships,
				KnownEntities:    known,
				Layers:           layers,
				AggregateRoot:    aggregateRoot,
				DryRun:           dryRun,
				Force:            force,
			})
			if err != nil {
				return fmt.Errorf("scaffold failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(artifacts)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderArtifacts(args[0], artifacts, dryRun))
			return nil
		},
	}

	cmd.Flags().StringVar(&properties, "props", "", `Property list, e.g. "Name:string, Price:decimal"`)
	cmd.Flags().StringVar(&relationships, "relations", "", `Relationship list, e.g. "OrderItem:one-to-many"`)
	cmd.Flags().StringSliceVar(&known, "known", nil, "Already-scaffolded entity names that types may reference")
	cmd.Flags().StringSliceVar(&layerNames, "layers", nil, "Layers to scaffold (default: configured layers)")
	cmd.Flags().BoolVar(&aggregateRoot, "aggregate-root", false, "Mark the entity as an aggregate root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show generated files without writing them")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output artifacts as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Project path to scaffold into")

	return cmd
}

func parseLayerFlags(names []string) ([]domain.LayerID, error) {
	var layers []domain.LayerID
	for _, name := range names {
		l, ok := domain.ParseLayer(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown layer %q (valid: domain, infrastructure, presentation, test)", name)
		}
		layers = append(layers, l)
	}
	return layers, nil
}
