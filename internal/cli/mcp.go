package cli

import (
	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/browser"
	"github.com/habtools/habctl/internal/mcp"
	"github.com/habtools/habctl/internal/rest"
)

// MCPHandler handles the MCP server command
type MCPHandler struct {
	app     *App
	version string
}

// NewMCPHandler creates a new MCP command handler
func NewMCPHandler(app *App, version string) *MCPHandler {
	return &MCPHandler{app: app, version: version}
}

// Execute starts the stdio MCP server exposing item lookups as tools.
func (h *MCPHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := h.app.loadConfig(cmd)
	if err != nil {
		return err
	}

	client := h.app.newClient(cfg)
	launcher := browser.NewLauncher(h.app.Logger)

	server := mcp.NewServer(h.app.Logger, client, launcher, rest.ResolveBaseURL(cfg), h.version)
	return server.Run(cmd.Context())
}
