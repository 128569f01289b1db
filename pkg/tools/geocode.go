package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GeocodeAddressTool returns a tool definition for geocoding addresses.
func GeocodeAddressTool() mcp.Tool {
	return mcp.NewTool("geocode_address",
		mcp.WithDescription("Resolve an address or place name to coordinates and region code"),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("The address or place name to resolve"),
		),
		mcp.WithString("city",
			mcp.Description("City to scope the lookup to"),
			mcp.DefaultString(""),
		),
	)
}

// HandleGeocodeAddress implements the geocoding tool on top of the
// shared resolution cascade.
func (r *Registry) HandleGeocodeAddress(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address := mcp.ParseString(rawInput, "address", "")
	city := mcp.ParseString(rawInput, "city", "")

	if !r.client.Config().HasKey() {
		return ErrorResponse(noKeyText), nil
	}

	loc := r.client.ResolveLocation(ctx, address, city)
	if !loc.Resolved() {
		return ErrorResponse("未找到该地址"), nil
	}

	text := fmt.Sprintf("地址: %s\n坐标: %s\n区域代码: %s", loc.Name, loc.Coordinate, loc.AdminCode)
	return mcp.NewToolResultText(text), nil
}

// RegeocodeLocationTool returns a tool definition for reverse geocoding.
func RegeocodeLocationTool() mcp.Tool {
	return mcp.NewTool("regeocode_location",
		mcp.WithDescription("Convert a 'lon,lat' coordinate to a human-readable address"),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Coordinate as 'lon,lat'; latitude-first input is corrected automatically"),
		),
	)
}

// HandleRegeocodeLocation implements the reverse geocoding tool.
func (r *Registry) HandleRegeocodeLocation(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "regeocode_location")

	location := mcp.ParseString(rawInput, "location", "")

	if !r.client.Config().HasKey() {
		return ErrorResponse(noKeyText), nil
	}

	addr, err := r.client.ReverseGeocode(ctx, location)
	if err != nil {
		logger.Error("reverse geocoding failed", "location", location, "error", err)
		return ErrorResponse(routeErrorText(err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("位置解析: %s", addr)), nil
}

// IPLocateTool returns a tool definition for IP-based location.
func IPLocateTool() mcp.Tool {
	return mcp.NewTool("ip_locate",
		mcp.WithDescription("Locate an IP address to a province and city"),
		mcp.WithString("ip",
			mcp.Description("IP address to locate; defaults to the caller's own"),
			mcp.DefaultString(""),
		),
	)
}

// HandleIPLocate implements the IP location tool.
func (r *Registry) HandleIPLocate(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "ip_locate")

	ip := mcp.ParseString(rawInput, "ip", "")

	if !r.client.Config().HasKey() {
		return ErrorResponse(noKeyText), nil
	}

	province, city, err := r.client.IPLocate(ctx, ip)
	if err != nil {
		logger.Error("ip location failed", "ip", ip, "error", err)
		return ErrorResponse(routeErrorText(err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("IP定位结果: %s%s", province, city)), nil
}
