// Package tools provides the amap MCP tool implementations.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/amaptools/amapmcp/pkg/amap"
)

// Registry holds all MCP tool registrations for the amap service.
// Every handler goes through the registry so the immutable client
// configuration is passed explicitly instead of living in globals.
type Registry struct {
	logger *slog.Logger
	client *amap.Client
}

// NewRegistry creates a new MCP tool registry backed by the given
// amap client.
func NewRegistry(logger *slog.Logger, client *amap.Client) *Registry {
	return &Registry{
		logger: logger,
		client: client,
	}
}

// ToolDefinition represents an amap MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all amap MCP tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// Routing Tools
		{
			Name:        "plan_route",
			Description: "Plan a route between two places and get a turn-by-turn text itinerary",
			Tool:        PlanRouteTool(),
			Handler:     r.HandlePlanRoute,
		},

		// Place Search Tools
		{
			Name:        "poi_search",
			Description: "Search points of interest by keyword, proximity, polygon or POI id",
			Tool:        PoiSearchTool(),
			Handler:     r.HandlePoiSearch,
		},

		// Geocoding Tools
		{
			Name:        "geocode_address",
			Description: "Resolve an address or place name to coordinates and region code",
			Tool:        GeocodeAddressTool(),
			Handler:     r.HandleGeocodeAddress,
		},
		{
			Name:        "regeocode_location",
			Description: "Convert a 'lon,lat' coordinate to a human-readable address",
			Tool:        RegeocodeLocationTool(),
			Handler:     r.HandleRegeocodeLocation,
		},
		{
			Name:        "ip_locate",
			Description: "Locate an IP address to a province and city",
			Tool:        IPLocateTool(),
			Handler:     r.HandleIPLocate,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}
