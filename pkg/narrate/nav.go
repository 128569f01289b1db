package narrate

import (
	"fmt"
	"strings"

	"github.com/amaptools/amapmcp/pkg/amap"
)

// modeIcons is total over the normalized travel modes.
var modeIcons = map[amap.TravelMode]string{
	amap.ModeDriving:   "🚗",
	amap.ModeWalking:   "🚶",
	amap.ModeBicycling: "🚲",
	amap.ModeTransit:   "🚌",
}

// Navigation renders one driving/walking/bicycling path as an
// icon-annotated, numbered itinerary.
func Navigation(mode amap.TravelMode, path amap.Path) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("%s 【%s导航】", modeIcons[mode], mode))

	summary := fmt.Sprintf("总耗时: %s | 总距离: %s",
		Duration(path.Duration.Int()), Distance(path.Distance.Float()))
	if mode == amap.ModeDriving {
		summary += fmt.Sprintf(" | 红绿灯: %s个 | 过路费: %s元",
			orZero(path.TrafficLights), orZero(path.Tolls))
		if path.Restriction.String() == "1" {
			summary += " (⚠️含限行区域)"
		}
	}
	lines = append(lines, summary)
	lines = append(lines, strings.Repeat("-", 20))
	lines = append(lines, "📝 详细路线:")

	for i, s := range path.Steps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, describeStep(s)))
	}
	return strings.Join(lines, "\n")
}

// describeStep enriches one terse instruction with the road name, the
// distance and the assistant action, each only when the text does not
// already carry it. Enrichment is additive, never destructive.
func describeStep(s amap.Step) string {
	desc := s.Instruction

	if road := s.Road.Join(""); road != "" && !strings.Contains(desc, road) {
		if strings.Contains(desc, "向") {
			desc += fmt.Sprintf(" (沿%s)", road)
		} else {
			desc += fmt.Sprintf("，沿%s行驶", road)
		}
	}
	if !strings.Contains(desc, "米") && !strings.Contains(desc, "公里") && s.Distance.Int() > 0 {
		desc += fmt.Sprintf(" %s米", s.Distance.String())
	}
	if assist := s.AssistantAction.Join(""); assist != "" {
		desc += fmt.Sprintf(" (%s)", assist)
	}
	return desc
}

// orZero substitutes "0" for absent numeric fields in summary lines.
func orZero(n amap.Num) string {
	if n.String() == "" {
		return "0"
	}
	return n.String()
}
