// Package narrate renders normalized route and POI data into itinerary
// text for consumption by a calling agent.
package narrate

import "fmt"

// Duration renders a second count as minutes, switching to hours and
// minutes from one hour up.
func Duration(seconds int) string {
	m := seconds / 60
	if m < 60 {
		return fmt.Sprintf("%d分钟", m)
	}
	return fmt.Sprintf("%d小时%d分钟", m/60, m%60)
}

// Distance renders meters as an integer-meter value, switching to
// one-decimal kilometers at 1000.
func Distance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d米", int(meters))
	}
	return fmt.Sprintf("%.1f公里", meters/1000)
}
