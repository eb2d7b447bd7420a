package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/archforge/archforge/internal/adapters/outbound/config"
	"github.com/archforge/archforge/internal/adapters/outbound/gitinfo"
	"github.com/archforge/archforge/internal/adapters/outbound/scanner"
	"github.com/archforge/archforge/internal/adapters/outbound/writer"
	"github.com/archforge/archforge/internal/application"
	"github.com/archforge/archforge/internal/domain"
)

// registerTools registers all ArchForge MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. archforge_scaffold
	s.AddTool(
		mcplib.NewTool("archforge_scaffold",
			mcplib.WithDescription("Generate a Clean Architecture feature slice (entity, repository, EF configuration, endpoints, tests) for an entity. Returns the generated artifacts as JSON."),
			mcplib.WithString("entity",
				mcplib.Required(),
				mcplib.Description("Entity name, e.g. Order or customer_profile"),
			),
			mcplib.WithString("properties",
				mcplib.Description("Comma-separated Name:type property list, e.g. 'Name:string, Price:decimal'"),
			),
			mcplib.WithString("relationships",
				mcplib.Description("Comma-separated Target:cardinality list, e.g. 'OrderItem:one-to-many'"),
			),
			mcplib.WithString("known",
				mcplib.Description("Comma-separated names of already-scaffolded entities that types may reference"),
			),
			mcplib.WithString("layers",
				mcplib.Description("Comma-separated subset of layers to generate (domain, infrastructure, presentation, test)"),
			),
			mcplib.WithBoolean("write",
				mcplib.Description("Write the artifacts to disk instead of only returning them"),
			),
		),
		handleScaffold(projectPath),
	)

	// 2. archforge_audit
	s.AddTool(
		mcplib.NewTool("archforge_audit",
			mcplib.WithDescription("Audit the project's C# sources for layer dependency violations. Returns the full audit report as JSON."),
		),
		handleAudit(projectPath),
	)

	// 3. archforge_layer_rules
	s.AddTool(
		mcplib.NewTool("archforge_layer_rules",
			mcplib.WithDescription("Returns the active layer dependency rules for the project as JSON"),
		),
		handleLayerRules(projectPath),
	)
}

func newServices() (*application.ScaffoldService, *application.AuditService) {
	loader := config.New()
	return application.NewScaffoldService(loader, writer.New()),
		application.NewAuditService(loader, scanner.New(), gitinfo.New())
}

func handleScaffold(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entity, err := request.RequireString("entity")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		props, _ := args["properties"].(string)
		relations, _ := args["relationships"].(string)
		known, _ := args["known"].(string)
		layersArg, _ := args["layers"].(string)
		write, _ := args["write"].(bool)

		var layers []domain.LayerID
		for _, raw := range splitAndTrim(layersArg) {
			layer, ok := domain.ParseLayer(raw)
			if !ok {
				return errorResult(fmt.Sprintf("unknown layer %q", raw)), nil
			}
			layers = append(layers, layer)
		}

		scaffoldSvc, _ := newServices()
		artifacts, err := scaffoldSvc.Scaffold(projectPath, application.ScaffoldRequest{
			EntityName:       entity,
			RawProperties:    props,
			RawRelationships: relations,
			KnownEntities:    splitAndTrim(known),
			Layers:           layers,
			DryRun:           !write,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("scaffold failed: %v", err)), nil
		}
		return jsonResult(artifacts)
	}
}

func handleAudit(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, auditSvc := newServices()
		report, err := auditSvc.AuditProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleLayerRules(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, auditSvc := newServices()
		graph, err := auditSvc.ActiveGraph(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading layer rules failed: %v", err)), nil
		}
		return jsonResult(layerRules(graph))
	}
}

// layerRules flattens a graph into a serializable rule table.
func layerRules(graph *domain.LayerGraph) map[string][]string {
	rules := make(map[string][]string, len(graph.Layers()))
	for _, layer := range graph.Layers() {
		targets := graph.AllowedTargets(layer)
		names := make([]string, 0, len(targets))
		for _, t := range targets {
			names = append(names, string(t))
		}
		rules[string(layer)] = names
	}
	return rules
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
