package narrate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amaptools/amapmcp/pkg/amap"
)

// maxTransitPlans bounds how many ranked plans are rendered.
const maxTransitPlans = 3

// TransitItinerary renders up to three transit plans in upstream
// ranking order: a transfer-chain summary for each, full segment detail
// for the top-ranked plan only.
func TransitItinerary(transits []amap.Transit) string {
	if len(transits) == 0 {
		return "未找到公交方案"
	}

	lines := []string{"🚌 【公交/地铁导航】(推荐Top3)"}

	for idx, t := range transits {
		if idx >= maxTransitPlans {
			break
		}

		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("=== 方案 %d (%s) ===", idx+1, Duration(t.Duration.Int())))
		lines = append(lines, fmt.Sprintf("💰 票价: %s元 | 🚶 步行: %s",
			formatCost(t.Cost), Distance(t.WalkingDistance.Float())))

		var chain []string
		var details []string
		for _, seg := range t.Segments {
			switch {
			case seg.Bus != nil && len(seg.Bus.Buslines) > 0:
				b := seg.Bus.Buslines[0]
				line, _, _ := strings.Cut(b.Name, "(")
				stops := b.NumStops.String()
				if stops == "" {
					stops = "--"
				}
				chain = append(chain, line)
				details = append(details, fmt.Sprintf("  • 🚌 乘 %s: %s 上车 -> %s 下车 (坐%s站)",
					line, stopName(b.DepartureStop, "起点"), stopName(b.ArrivalStop, "终点"), stops))

			case seg.Railway != nil && seg.Railway.Name != "":
				r := seg.Railway
				chain = append(chain, r.Name)
				details = append(details, fmt.Sprintf("  • 🚄 乘 %s: %s -> %s",
					r.Name, r.DepartureStop.Name, r.ArrivalStop.Name))

			case seg.Walking != nil && seg.Walking.Distance.Int() > 50:
				// intra-transfer walks under 50m are noise
				details = append(details, fmt.Sprintf("  • 🚶 步行 %s", Distance(seg.Walking.Distance.Float())))
			}
		}

		lines = append(lines, fmt.Sprintf("📍 路线: %s", strings.Join(chain, " -> ")))

		if idx == 0 {
			lines = append(lines, "📝 详细步骤:")
			lines = append(lines, details...)
		}
	}
	return strings.Join(lines, "\n")
}

// formatCost renders a fare, keeping one decimal for whole amounts so
// "3" reads as "3.0".
func formatCost(n amap.Num) string {
	f := n.Float()
	if f == math.Trunc(f) {
		return fmt.Sprintf("%.1f", f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func stopName(s amap.Stop, fallback string) string {
	if s.Name == "" {
		return fallback
	}
	return s.Name
}
