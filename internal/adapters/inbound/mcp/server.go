package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewArchForgeMCPServer creates a new MCP server with all ArchForge tools and
// resources registered. The projectPath is the root directory of the project
// to scaffold into or audit.
func NewArchForgeMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"archforge",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
