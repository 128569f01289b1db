package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amaptools/amapmcp/pkg/amap"
	"github.com/amaptools/amapmcp/pkg/narrate"
)

// PlanRouteTool returns the tool definition for route planning.
func PlanRouteTool() mcp.Tool {
	return mcp.NewTool("plan_route",
		mcp.WithDescription("Plan a route between two places and get a turn-by-turn text itinerary"),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Origin as 'lon,lat' or a place name"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Destination as 'lon,lat' or a place name"),
		),
		mcp.WithString("mode",
			mcp.Description("Travel mode: driving, walking, transit or bicycling (aliases like car, walk, bike, bus accepted)"),
			mcp.DefaultString("driving"),
		),
		mcp.WithString("city",
			mcp.Description("City name or adcode; needed for useful transit plans"),
			mcp.DefaultString(""),
		),
		mcp.WithNumber("strategy",
			mcp.Description("Transit routing strategy"),
			mcp.DefaultNumber(0),
		),
	)
}

// HandlePlanRoute implements the route planning tool: resolve both
// endpoints, dispatch by mode, narrate the normalized result.
func (r *Registry) HandlePlanRoute(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "plan_route")

	origin := mcp.ParseString(rawInput, "origin", "")
	destination := mcp.ParseString(rawInput, "destination", "")
	modeArg := mcp.ParseString(rawInput, "mode", "driving")
	city := mcp.ParseString(rawInput, "city", "")
	strategy := int(mcp.ParseFloat64(rawInput, "strategy", 0))

	if !r.client.Config().HasKey() {
		return ErrorResponse(noKeyText), nil
	}

	mode, err := amap.ResolveMode(modeArg)
	if err != nil {
		return ErrorResponse(routeErrorText(err)), nil
	}

	// Origin and destination have no ordering dependency, but the
	// cascade inside each resolution is strictly sequential.
	ori := r.client.ResolveLocation(ctx, origin, city)
	dst := r.client.ResolveLocation(ctx, destination, city)
	if !ori.Resolved() || !dst.Resolved() {
		return ErrorResponse(fmt.Sprintf("无法定位起点(%s)或终点(%s)", origin, destination)), nil
	}

	res, err := r.client.PlanRoute(ctx, ori, dst, mode, city, strategy)
	if err != nil {
		logger.Error("route planning failed", "mode", mode, "error", err)
		return ErrorResponse(routeErrorText(err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "【路径规划】\n起点: %s\n终点: %s\n", ori.Name, dst.Name)

	switch {
	case mode == amap.ModeTransit:
		sb.WriteString(narrate.TransitItinerary(res.Transits))
	case res.Path != nil:
		sb.WriteString(narrate.Navigation(mode, *res.Path))
	case mode == amap.ModeBicycling:
		sb.WriteString("未找到骑行路线")
	default:
		fmt.Fprintf(&sb, "未找到%s路线", mode)
	}

	return mcp.NewToolResultText(sb.String()), nil
}
