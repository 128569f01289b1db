package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amaptools/amapmcp/pkg/amap"
	"github.com/amaptools/amapmcp/pkg/narrate"
)

// PoiSearchTool returns the tool definition for the combined POI
// search. The active search style is chosen from which parameters are
// present, with the fixed priority poi_id > polygon > center > keywords.
func PoiSearchTool() mcp.Tool {
	return mcp.NewTool("poi_search",
		mcp.WithDescription("Search points of interest. Provide poi_id for an exact lookup, polygon for an area search, center for a proximity search, or keywords alone for a text search"),
		mcp.WithString("keywords",
			mcp.Description("Search keywords (required for text, proximity and polygon searches)"),
			mcp.DefaultString(""),
		),
		mcp.WithString("city",
			mcp.Description("Restrict a keyword search to this city"),
			mcp.DefaultString(""),
		),
		mcp.WithString("center",
			mcp.Description("Center as 'lon,lat'; triggers a proximity search"),
			mcp.DefaultString(""),
		),
		mcp.WithNumber("radius",
			mcp.Description("Proximity search radius in meters"),
			mcp.DefaultNumber(amap.DefaultRadius),
		),
		mcp.WithString("polygon",
			mcp.Description("Polygon as 'lon,lat|lon,lat|...' with at least 3 points; triggers a polygon search"),
			mcp.DefaultString(""),
		),
		mcp.WithString("poi_id",
			mcp.Description("amap POI id; triggers an exact lookup"),
			mcp.DefaultString(""),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results"),
			mcp.DefaultNumber(amap.DefaultLimit),
		),
	)
}

// HandlePoiSearch implements the combined POI search tool.
func (r *Registry) HandlePoiSearch(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "poi_search")

	q := amap.SearchQuery{
		Keywords: mcp.ParseString(rawInput, "keywords", ""),
		City:     mcp.ParseString(rawInput, "city", ""),
		Center:   mcp.ParseString(rawInput, "center", ""),
		Radius:   int(mcp.ParseFloat64(rawInput, "radius", amap.DefaultRadius)),
		Polygon:  mcp.ParseString(rawInput, "polygon", ""),
		ID:       mcp.ParseString(rawInput, "poi_id", ""),
		Limit:    int(mcp.ParseFloat64(rawInput, "limit", amap.DefaultLimit)),
	}

	if !r.client.Config().HasKey() {
		return ErrorResponse("❌ 错误: 未配置 AMAP_API_KEY。"), nil
	}

	pois, err := r.client.SearchPOI(ctx, q)
	if err != nil {
		logger.Error("poi search failed", "mode", q.Label(), "error", err)
		return ErrorResponse(poiErrorText(err)), nil
	}

	if len(pois) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("⚠️ 在[%s]未找到相关结果。", q.Label())), nil
	}
	return mcp.NewToolResultText(formatPOIList(q.Label(), pois)), nil
}

// formatPOIList renders ranked POI results, enriched from the
// business-extension block when it is present.
func formatPOIList(label string, pois []amap.POI) string {
	blocks := []string{fmt.Sprintf("🔍 [%s] 找到 %d 个结果:", label, len(pois))}

	for idx, poi := range pois {
		name := poi.Name
		if name == "" {
			name = "未知"
		}
		addr := poi.Address.Join("")
		if addr == "" {
			addr = "无地址"
		}

		distInfo := ""
		if poi.Distance.String() != "" {
			distInfo = fmt.Sprintf(" (📏 距中心 %s)", narrate.Distance(poi.Distance.Float()))
		}

		pType, _, _ := strings.Cut(poi.Type, ";")

		entry := fmt.Sprintf("%d. **%s**%s\n   📍 %s\n   🏷️ %s | 🆔 %s",
			idx+1, name, distInfo, addr, pType, poi.ID)
		if tel := poi.Tel.Join(" "); tel != "" {
			entry += fmt.Sprintf(" | 📞 %s", tel)
		}
		if rating := poi.BizExt.Rating.Join(""); isRating(rating) {
			entry += fmt.Sprintf("\n   ⭐ 评分: %s分", rating)
		}
		if cost := poi.BizExt.Cost.Join(""); cost != "" {
			entry += fmt.Sprintf(" | 💰 人均: ¥%s", cost)
		}

		blocks = append(blocks, entry)
	}
	return strings.Join(blocks, "\n\n")
}

// isRating reports whether s looks like a decimal rating such as "4.5".
func isRating(s string) bool {
	digits := strings.ReplaceAll(s, ".", "")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
