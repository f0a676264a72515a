// Package mcp exposes server lookups as MCP tools over stdio so editors
// and agents can request hover-style item documents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/habtools/habctl/internal/browser"
	"github.com/habtools/habctl/internal/errors"
	"github.com/habtools/habctl/internal/format"
	"github.com/habtools/habctl/internal/rest"
)

// Server wraps the MCP server and provides habctl tools
type Server struct {
	mcpServer *server.MCPServer
	logger    zerolog.Logger
	items     rest.ItemProvider
	launcher  *browser.Launcher
	baseURL   string
	version   string
}

// NewServer creates a new MCP server instance backed by the given REST
// client.
func NewServer(logger zerolog.Logger, items rest.ItemProvider, launcher *browser.Launcher, baseURL, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		mcpServer: server.NewMCPServer("habctl", version),
		logger:    logger.With().Str("component", "mcp_server").Logger(),
		items:     items,
		launcher:  launcher,
		baseURL:   baseURL,
		version:   version,
	}

	s.registerTools()
	return s
}

// Run serves MCP requests over stdio until stdin closes.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Debug().Str("version", s.version).Msg("starting MCP server on stdio")

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "MCP server error")
	}

	return nil
}

// registerTools registers all habctl tools with the MCP server
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "openhab_item_state",
		Description: "Look up an openHAB item by name and return its state as a Markdown document. Groups include a member listing.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "The item name, e.g. 'Livingroom_Temperature'",
				},
			},
			Required: []string{"name"},
		},
	}, s.handleItemState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "openhab_list_sitemaps",
		Description: "List the sitemaps the openHAB server exposes, with their UI links.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSitemaps)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "openhab_open_ui",
		Description: "Open the openHAB Basic UI (or a specific path) in the local browser.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path or absolute URL to open (default: /basicui/app)",
				},
			},
		},
	}, s.handleOpenUI)
}

// handleItemState implements the openhab_item_state tool
func (s *Server) handleItemState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return errorResponse("Missing required argument: name"), nil
	}

	s.logger.Debug().Str("item", name).Msg("item state requested")

	item, err := s.items.GetItem(ctx, name)
	if err != nil {
		if errors.IsNotFound(err) {
			// A missing item is an empty result, not a tool failure
			return textResponse(fmt.Sprintf("Item %s not found", name)), nil
		}
		return errorResponse(errors.UserMessage(err)), nil
	}

	return textResponse(format.FormatItem(item).Markdown()), nil
}

// handleListSitemaps implements the openhab_list_sitemaps tool
func (s *Server) handleListSitemaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sitemaps, err := s.items.ListSitemaps(ctx)
	if err != nil {
		return errorResponse(errors.UserMessage(err)), nil
	}

	payload, err := json.MarshalIndent(sitemaps, "", "  ")
	if err != nil {
		return errorResponse(fmt.Sprintf("Failed to encode sitemaps: %v", err)), nil
	}

	return textResponse(string(payload)), nil
}

// handleOpenUI implements the openhab_open_ui tool
func (s *Server) handleOpenUI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := "/basicui/app"
	if args := request.GetArguments(); args != nil {
		if p, ok := args["path"].(string); ok && p != "" {
			path = p
		}
	}

	target := rest.BuildURL(s.baseURL, path)
	if err := s.launcher.OpenURL(target); err != nil {
		return errorResponse(errors.UserMessage(err)), nil
	}

	return textResponse(fmt.Sprintf("Opened %s", target)), nil
}

// Helper function to create error response
func errorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// Helper function to create success response
func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}
