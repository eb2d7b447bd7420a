package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all ArchForge MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. archforge://audit - current violation report
	s.AddResource(
		mcplib.NewResource(
			"archforge://audit",
			"Audit Report",
			mcplib.WithResourceDescription("Current layer dependency audit for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleAuditResource(projectPath),
	)

	// 2. archforge://layer-rules - active dependency rule table
	s.AddResource(
		mcplib.NewResource(
			"archforge://layer-rules",
			"Layer Rules",
			mcplib.WithResourceDescription("Active layer dependency rules, including config overrides"),
			mcplib.WithMIMEType("application/json"),
		),
		handleLayerRulesResource(projectPath),
	)
}

func handleAuditResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, auditSvc := newServices()
		report, err := auditSvc.AuditProject(projectPath)
		if err != nil {
			return nil, fmt.Errorf("audit failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "archforge://audit",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleLayerRulesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, auditSvc := newServices()
		graph, err := auditSvc.ActiveGraph(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading layer rules failed: %w", err)
		}

		data, err := json.MarshalIndent(layerRules(graph), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "archforge://layer-rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
