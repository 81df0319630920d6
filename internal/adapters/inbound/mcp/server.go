package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewRemedyMCPServer creates a new MCP server with all Remedy tools
// registered. The projectPath is the directory whose files can be scanned
// and fixed.
func NewRemedyMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"remedy",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
